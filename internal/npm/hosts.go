package npm

import (
	"context"
	"fmt"
	"net/http"
)

// ListProxyHosts returns all proxy hosts.
func (c *Client) ListProxyHosts(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/proxy-hosts", nil)
}

// GetProxyHost returns one proxy host by id.
func (c *Client) GetProxyHost(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/proxy-hosts/%d", id), nil)
}

// CreateProxyHost creates a proxy host, filling omitted optional fields
// from the proxy host default table.
func (c *Client) CreateProxyHost(ctx context.Context, req ProxyHostRequest) (Record, error) {
	payload, err := creationPayload(req, proxyHostDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/proxy-hosts", payload)
}

// UpdateProxyHost updates a proxy host. Only supplied fields are sent.
func (c *Client) UpdateProxyHost(ctx context.Context, id int, req ProxyHostRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/nginx/proxy-hosts/%d", id), payload)
}

// DeleteProxyHost deletes a proxy host.
func (c *Client) DeleteProxyHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/proxy-hosts/%d", id), nil)
	return err
}

// EnableProxyHost enables a proxy host.
func (c *Client) EnableProxyHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/proxy-hosts/%d/enable", id), nil)
	return err
}

// DisableProxyHost disables a proxy host without deleting it.
func (c *Client) DisableProxyHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/proxy-hosts/%d/disable", id), nil)
	return err
}

// ListRedirectionHosts returns all redirection hosts.
func (c *Client) ListRedirectionHosts(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/redirection-hosts", nil)
}

// GetRedirectionHost returns one redirection host by id.
func (c *Client) GetRedirectionHost(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/redirection-hosts/%d", id), nil)
}

// CreateRedirectionHost creates a redirection host with defaults applied.
func (c *Client) CreateRedirectionHost(ctx context.Context, req RedirectionHostRequest) (Record, error) {
	payload, err := creationPayload(req, redirectionHostDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/redirection-hosts", payload)
}

// UpdateRedirectionHost updates a redirection host.
func (c *Client) UpdateRedirectionHost(ctx context.Context, id int, req RedirectionHostRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/nginx/redirection-hosts/%d", id), payload)
}

// DeleteRedirectionHost deletes a redirection host.
func (c *Client) DeleteRedirectionHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/redirection-hosts/%d", id), nil)
	return err
}

// EnableRedirectionHost enables a redirection host.
func (c *Client) EnableRedirectionHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/redirection-hosts/%d/enable", id), nil)
	return err
}

// DisableRedirectionHost disables a redirection host without deleting it.
func (c *Client) DisableRedirectionHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/redirection-hosts/%d/disable", id), nil)
	return err
}

// ListDeadHosts returns all 404 hosts.
func (c *Client) ListDeadHosts(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/dead-hosts", nil)
}

// GetDeadHost returns one 404 host by id.
func (c *Client) GetDeadHost(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/dead-hosts/%d", id), nil)
}

// CreateDeadHost creates a 404 host with defaults applied.
func (c *Client) CreateDeadHost(ctx context.Context, req DeadHostRequest) (Record, error) {
	payload, err := creationPayload(req, deadHostDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/dead-hosts", payload)
}

// UpdateDeadHost updates a 404 host.
func (c *Client) UpdateDeadHost(ctx context.Context, id int, req DeadHostRequest) (Record, error) {
	payload, err := toPayload(req)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPut, fmt.Sprintf("/api/nginx/dead-hosts/%d", id), payload)
}

// DeleteDeadHost deletes a 404 host.
func (c *Client) DeleteDeadHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/dead-hosts/%d", id), nil)
	return err
}

// EnableDeadHost enables a 404 host.
func (c *Client) EnableDeadHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/dead-hosts/%d/enable", id), nil)
	return err
}

// DisableDeadHost disables a 404 host without deleting it.
func (c *Client) DisableDeadHost(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/dead-hosts/%d/disable", id), nil)
	return err
}
