package npm

import (
	"context"
	"fmt"
	"net/http"
)

// ListCertificates returns all certificates.
func (c *Client) ListCertificates(ctx context.Context) ([]Record, error) {
	return execute[[]Record](ctx, c, http.MethodGet, "/api/nginx/certificates", nil)
}

// GetCertificate returns one certificate by id.
func (c *Client) GetCertificate(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodGet, fmt.Sprintf("/api/nginx/certificates/%d", id), nil)
}

// CreateCertificate requests a new certificate. The provider defaults to
// letsencrypt; provider settings (letsencrypt_email, dns challenge
// options) travel in meta.
func (c *Client) CreateCertificate(ctx context.Context, req CertificateRequest) (Record, error) {
	payload, err := creationPayload(req, certificateDefaults)
	if err != nil {
		return nil, err
	}
	return execute[Record](ctx, c, http.MethodPost, "/api/nginx/certificates", payload)
}

// DeleteCertificate deletes a certificate.
func (c *Client) DeleteCertificate(ctx context.Context, id int) error {
	_, err := execute[Record](ctx, c, http.MethodDelete, fmt.Sprintf("/api/nginx/certificates/%d", id), nil)
	return err
}

// RenewCertificate triggers renewal of a certificate.
func (c *Client) RenewCertificate(ctx context.Context, id int) (Record, error) {
	return execute[Record](ctx, c, http.MethodPost, fmt.Sprintf("/api/nginx/certificates/%d/renew", id), nil)
}
