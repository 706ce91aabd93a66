package npm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// fakeServer is a minimal proxy manager admin API for exercising the
// client's credential and request handling.
type fakeServer struct {
	mu         sync.Mutex
	tokenCalls int
	requests   []string // "METHOD path" in arrival order

	tokenStatus int           // 0 means 200
	tokenTTL    time.Duration // validity window of issued tokens

	mux *http.ServeMux
}

func newFakeServer(tokenTTL time.Duration) *fakeServer {
	f := &fakeServer{tokenTTL: tokenTTL, mux: http.NewServeMux()}
	f.mux.HandleFunc("/api/tokens", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.tokenCalls++
		f.mu.Unlock()

		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			w.Write([]byte(`{"error":{"message":"Invalid email or password"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token":   "test-token",
			"expires": time.Now().Add(f.tokenTTL).Format(time.RFC3339),
		})
	})
	return f
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.mu.Unlock()
	f.mux.ServeHTTP(w, r)
}

func (f *fakeServer) handle(pattern string, handler http.HandlerFunc) {
	f.mux.HandleFunc(pattern, handler)
}

func (f *fakeServer) tokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenCalls
}

// newTestClient wires a client to the fake server.
func newTestClient(t *testing.T, fake *fakeServer) *npm.Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return npm.NewClientWithHTTPClient(server.Client(), server.URL, "admin@example.com", "secret")
}

func TestEnsureToken_ReusedWhileValid(t *testing.T) {
	fake := newFakeServer(10 * time.Hour)
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client := newTestClient(t, fake)

	ctx := context.Background()
	_, err := client.ListProxyHosts(ctx)
	require.NoError(t, err)
	_, err = client.ListProxyHosts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.tokenCount(), "a token valid beyond the renewal buffer must be reused")
}

func TestEnsureToken_RenewsWithinBuffer(t *testing.T) {
	// Tokens expire one minute out, inside the five minute buffer, so
	// every call must perform exactly one fresh exchange.
	fake := newFakeServer(time.Minute)
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client := newTestClient(t, fake)

	ctx := context.Background()
	_, err := client.ListProxyHosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.tokenCount())

	_, err = client.ListProxyHosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.tokenCount())
}

func TestEnsureToken_BufferOverride(t *testing.T) {
	fake := newFakeServer(10 * time.Minute)
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client := newTestClient(t, fake)
	client.RenewalBuffer = 30 * time.Minute

	ctx := context.Background()
	_, err := client.ListProxyHosts(ctx)
	require.NoError(t, err)
	_, err = client.ListProxyHosts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.tokenCount(), "a widened buffer must force renewal")
}

func TestVerify_AuthFailure(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.tokenStatus = http.StatusUnauthorized
	client := newTestClient(t, fake)

	err := client.Verify(context.Background())
	require.Error(t, err)

	var authErr *npm.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Contains(t, authErr.Body, "Invalid email or password")
}

func TestRequestError_PropagatedIntact(t *testing.T) {
	fake := newFakeServer(time.Hour)
	entityCalls := 0
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		entityCalls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Token expired"}}`))
	})
	client := newTestClient(t, fake)

	_, err := client.ListProxyHosts(context.Background())
	require.Error(t, err)

	var reqErr *npm.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "Token expired")
	assert.Equal(t, 1, entityCalls, "failed requests must not be retried")
}

func TestDelete_EmptyBody(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/proxy-hosts/7", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, fake)

	err := client.DeleteProxyHost(context.Background(), 7)
	assert.NoError(t, err, "an empty response body is an empty result, not a decode failure")
}

func TestDecodeError(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})
	client := newTestClient(t, fake)

	_, err := client.ListProxyHosts(context.Background())
	require.Error(t, err)

	var decErr *npm.DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestCreateProxyHost_DefaultsAndAuthFlow(t *testing.T) {
	fake := newFakeServer(time.Hour)
	var captured map[string]any
	var authHeader string
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		captured["id"] = 12
		json.NewEncoder(w).Encode(captured)
	})
	client := newTestClient(t, fake)

	host, err := client.CreateProxyHost(context.Background(), npm.ProxyHostRequest{
		DomainNames: []string{"app.example.com"},
		ForwardHost: "192.168.1.100",
		ForwardPort: 8080,
	})
	require.NoError(t, err)

	// Exactly one token exchange precedes the creation request.
	assert.Equal(t, []string{
		"POST /api/tokens",
		"POST /api/nginx/proxy-hosts",
	}, fake.requests)
	assert.Equal(t, "Bearer test-token", authHeader)

	// Supplied fields pass through.
	assert.Equal(t, []any{"app.example.com"}, captured["domain_names"])
	assert.Equal(t, "192.168.1.100", captured["forward_host"])
	assert.Equal(t, float64(8080), captured["forward_port"])

	// Omitted optional fields carry their documented defaults.
	assert.Equal(t, "http", captured["forward_scheme"])
	assert.Equal(t, false, captured["ssl_forced"])
	assert.Equal(t, true, captured["enabled"])
	assert.Equal(t, float64(0), captured["certificate_id"])
	assert.Equal(t, float64(0), captured["access_list_id"])

	assert.Equal(t, float64(12), host["id"])
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	fake := newFakeServer(time.Hour)
	var stored npm.Record
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
		stored["id"] = 3
		json.NewEncoder(w).Encode(stored)
	})
	fake.handle("/api/nginx/proxy-hosts/3", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(stored)
	})
	client := newTestClient(t, fake)

	created, err := client.CreateProxyHost(context.Background(), npm.ProxyHostRequest{
		DomainNames: []string{"app.example.com"},
		ForwardHost: "10.0.0.5",
		ForwardPort: 3000,
	})
	require.NoError(t, err)

	got, err := client.GetProxyHost(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, created["id"], got["id"])
	assert.Equal(t, []any{"app.example.com"}, got["domain_names"])
	assert.Equal(t, "10.0.0.5", got["forward_host"])
	assert.Equal(t, float64(3000), got["forward_port"])
}

func TestStreamCreate_ForwardingDefaults(t *testing.T) {
	fake := newFakeServer(time.Hour)
	var captured map[string]any
	fake.handle("/api/nginx/streams", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(captured)
	})
	client := newTestClient(t, fake)

	_, err := client.CreateStream(context.Background(), npm.StreamRequest{
		IncomingPort:   2222,
		ForwardingHost: "10.0.0.9",
		ForwardingPort: 22,
	})
	require.NoError(t, err)

	assert.Equal(t, true, captured["tcp_forwarding"])
	assert.Equal(t, false, captured["udp_forwarding"])
	assert.Equal(t, true, captured["enabled"])
}

func TestConcurrentCalls_ShareOneExchange(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/proxy-hosts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	client := newTestClient(t, fake)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.ListProxyHosts(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, fake.tokenCount(), "concurrent callers must await one shared exchange")
}
