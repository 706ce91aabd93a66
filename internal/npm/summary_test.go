package npm_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgracey/mcp-npm/internal/npm"
)

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestSummarizeHosts(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/proxy-hosts", jsonHandler(`[
		{"id": 1, "domain_names": ["app.example.com"], "forward_scheme": "http",
		 "forward_host": "192.168.1.100", "forward_port": 8080, "enabled": true},
		{"id": 2, "domain_names": ["api.example.com"], "forward_scheme": "https",
		 "forward_host": "10.0.0.5", "forward_port": 443, "enabled": 0}
	]`))
	fake.handle("/api/nginx/redirection-hosts", jsonHandler(`[{"id": 9}]`))
	fake.handle("/api/nginx/streams", jsonHandler(`[]`))
	fake.handle("/api/nginx/dead-hosts", jsonHandler(`[{"id": 4}, {"id": 5}]`))
	client := newTestClient(t, fake)

	summary, err := client.SummarizeHosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ProxyHosts)
	assert.Equal(t, 1, summary.RedirectionHosts)
	assert.Equal(t, 0, summary.Streams)
	assert.Equal(t, 2, summary.DeadHosts)

	require.Len(t, summary.Hosts, 2)
	assert.Equal(t, 1, summary.Hosts[0].ID)
	assert.Equal(t, []string{"app.example.com"}, summary.Hosts[0].Domains)
	assert.Equal(t, "http://192.168.1.100:8080", summary.Hosts[0].ForwardURL)
	assert.True(t, summary.Hosts[0].Enabled)

	// Older proxy manager versions encode enabled as 0/1.
	assert.False(t, summary.Hosts[1].Enabled)
	assert.Equal(t, "https://10.0.0.5:443", summary.Hosts[1].ForwardURL)
}

func TestSummarizeHosts_FailureFailsWholeView(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/proxy-hosts", jsonHandler(`[]`))
	fake.handle("/api/nginx/redirection-hosts", jsonHandler(`[]`))
	fake.handle("/api/nginx/dead-hosts", jsonHandler(`[]`))
	fake.handle("/api/nginx/streams", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	})
	client := newTestClient(t, fake)

	_, err := client.SummarizeHosts(context.Background())
	require.Error(t, err)

	var reqErr *npm.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
}

func TestSummarizeCertificates(t *testing.T) {
	fake := newFakeServer(time.Hour)
	fake.handle("/api/nginx/certificates", jsonHandler(`[
		{"id": 3, "nice_name": "example.com wildcard", "provider": "letsencrypt",
		 "domain_names": ["*.example.com"], "expires_on": "2026-11-02 10:00:00"}
	]`))
	client := newTestClient(t, fake)

	summary, err := client.SummarizeCertificates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	require.Len(t, summary.Certificates, 1)
	cert := summary.Certificates[0]
	assert.Equal(t, 3, cert.ID)
	assert.Equal(t, "example.com wildcard", cert.Name)
	assert.Equal(t, []string{"*.example.com"}, cert.Domains)
	assert.Equal(t, "letsencrypt", cert.Provider)
	assert.Equal(t, "2026-11-02 10:00:00", cert.ExpiresOn)
}
