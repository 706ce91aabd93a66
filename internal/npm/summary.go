package npm

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ProxyHostDigest is the per-host line of the hosts summary.
type ProxyHostDigest struct {
	ID         int      `json:"id"`
	Domains    []string `json:"domains"`
	ForwardURL string   `json:"forward_url"`
	Enabled    bool     `json:"enabled"`
}

// HostsSummary aggregates counts across all host kinds plus a digest of
// every proxy host.
type HostsSummary struct {
	ProxyHosts       int               `json:"proxy_hosts"`
	RedirectionHosts int               `json:"redirection_hosts"`
	Streams          int               `json:"streams"`
	DeadHosts        int               `json:"dead_hosts"`
	Hosts            []ProxyHostDigest `json:"hosts"`
}

// CertificateDigest is the per-certificate line of the certificates
// summary.
type CertificateDigest struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Domains   []string `json:"domains"`
	Provider  string   `json:"provider"`
	ExpiresOn string   `json:"expires_on"`
}

// CertificatesSummary is the certificates overview.
type CertificatesSummary struct {
	Total        int                 `json:"total"`
	Certificates []CertificateDigest `json:"certificates"`
}

// SummarizeHosts lists proxy hosts, redirection hosts, streams and dead
// hosts concurrently and composes the hosts overview. Failure of any one
// list fails the whole view.
func (c *Client) SummarizeHosts(ctx context.Context) (*HostsSummary, error) {
	var (
		proxyHosts, redirectionHosts []Record
		streams, deadHosts           []Record
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		proxyHosts, err = c.ListProxyHosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		redirectionHosts, err = c.ListRedirectionHosts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		streams, err = c.ListStreams(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		deadHosts, err = c.ListDeadHosts(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &HostsSummary{
		ProxyHosts:       len(proxyHosts),
		RedirectionHosts: len(redirectionHosts),
		Streams:          len(streams),
		DeadHosts:        len(deadHosts),
		Hosts:            make([]ProxyHostDigest, 0, len(proxyHosts)),
	}
	for _, host := range proxyHosts {
		summary.Hosts = append(summary.Hosts, ProxyHostDigest{
			ID:         recordInt(host, "id"),
			Domains:    recordStrings(host, "domain_names"),
			ForwardURL: forwardURL(host),
			Enabled:    recordBool(host, "enabled"),
		})
	}
	return summary, nil
}

// SummarizeCertificates lists certificates and composes the certificates
// overview.
func (c *Client) SummarizeCertificates(ctx context.Context) (*CertificatesSummary, error) {
	certs, err := c.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}

	summary := &CertificatesSummary{
		Total:        len(certs),
		Certificates: make([]CertificateDigest, 0, len(certs)),
	}
	for _, cert := range certs {
		summary.Certificates = append(summary.Certificates, CertificateDigest{
			ID:        recordInt(cert, "id"),
			Name:      recordString(cert, "nice_name"),
			Domains:   recordStrings(cert, "domain_names"),
			Provider:  recordString(cert, "provider"),
			ExpiresOn: recordString(cert, "expires_on"),
		})
	}
	return summary, nil
}

// forwardURL composes scheme://host:port from a proxy host record.
func forwardURL(host Record) string {
	return fmt.Sprintf("%s://%s:%d",
		recordString(host, "forward_scheme"),
		recordString(host, "forward_host"),
		recordInt(host, "forward_port"))
}

// Record field accessors. Entity shapes are remote-owned, so these read
// defensively: JSON numbers arrive as float64, and older proxy manager
// versions encode booleans as 0/1.

func recordString(r Record, key string) string {
	s, _ := r[key].(string)
	return s
}

func recordInt(r Record, key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func recordBool(r Record, key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	}
	return false
}

func recordStrings(r Record, key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
