// Package npm implements a client for the Nginx Proxy Manager admin REST
// API. The client owns a single bearer token and its expiry, renewing it
// transparently before requests when it is absent or close to expiring.
package npm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rgracey/mcp-npm/internal/config"
)

// DefaultTokenRenewalBuffer is the lead time before expiry at which the
// held token is treated as invalid and renewed. The proxy manager issues
// long-lived tokens; renewing a few minutes early avoids racing the
// server-side cutoff.
const DefaultTokenRenewalBuffer = 5 * time.Minute

// Client is a Nginx Proxy Manager API client. All entity operations go
// through execute, which guarantees a valid bearer token on every request.
// Safe for concurrent use.
type Client struct {
	baseURL    string
	identity   string
	secret     string
	httpClient *http.Client

	// RenewalBuffer overrides DefaultTokenRenewalBuffer when changed
	// before the first request.
	RenewalBuffer time.Duration

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a client for the proxy manager instance described by
// the connection configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:       cfg.BaseURL(),
		identity:      cfg.Email,
		secret:        cfg.Password,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		RenewalBuffer: DefaultTokenRenewalBuffer,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and
// base URL. This constructor is intended for testing, allowing injection
// of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, identity, secret string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		identity:      identity,
		secret:        secret,
		httpClient:    httpClient,
		RenewalBuffer: DefaultTokenRenewalBuffer,
	}
}

// tokenResponse is the body of POST /api/tokens.
type tokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// ensureToken guarantees a currently-valid bearer token is held,
// performing an authentication exchange when none is held or the held one
// is within RenewalBuffer of expiry. The mutex is held across the
// exchange, so concurrent callers await one shared refresh rather than
// issuing duplicates. On failure the previously held token is untouched.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Until(c.tokenExpiry) > c.RenewalBuffer {
		return c.token, nil
	}

	payload, err := json.Marshal(map[string]string{
		"identity": c.identity,
		"secret":   c.secret,
	})
	if err != nil {
		return "", &AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tokens", bytes.NewReader(payload))
	if err != nil {
		return "", &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", &AuthError{Err: fmt.Errorf("decoding token response: %w", err)}
	}

	c.token = tok.Token
	c.tokenExpiry = tok.Expires
	slog.Debug("acquired proxy manager token", "expires", tok.Expires)

	return c.token, nil
}

// execute performs one typed API operation: ensure a valid token, send the
// request, decode the response. An empty response body yields the zero
// value of T, which covers delete/enable/disable endpoints that return no
// payload.
func execute[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	token, err := c.ensureToken(ctx)
	if err != nil {
		return zero, err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return zero, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &RequestError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return zero, nil
	}

	var result T
	if err := json.Unmarshal(respBody, &result); err != nil {
		return zero, &DecodeError{Err: err}
	}

	return result, nil
}

// Verify performs one authentication exchange against the remote service,
// confirming the configuration and connectivity without touching any
// entity endpoint.
func (c *Client) Verify(ctx context.Context) error {
	_, err := c.ensureToken(ctx)
	return err
}
