// Package resources exposes read-only summary views of the proxy manager
// as MCP resources.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// Resource URIs served by this package.
const (
	HostsSummaryURI        = "npm://summary/hosts"
	CertificatesSummaryURI = "npm://summary/certificates"
)

// RegisterAll registers the summary resources with the MCP server.
func RegisterAll(server *mcp.Server, client *npm.Client) {
	server.AddResource(&mcp.Resource{
		URI:         HostsSummaryURI,
		Name:        "hosts_summary",
		Description: "Counts for every host kind plus a digest of each proxy host",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		summary, err := client.SummarizeHosts(ctx)
		if err != nil {
			return nil, fmt.Errorf("summarizing hosts: %w", err)
		}
		return jsonResource(HostsSummaryURI, summary)
	})

	server.AddResource(&mcp.Resource{
		URI:         CertificatesSummaryURI,
		Name:        "certificates_summary",
		Description: "Certificate count plus a digest of each certificate",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		summary, err := client.SummarizeCertificates(ctx)
		if err != nil {
			return nil, fmt.Errorf("summarizing certificates: %w", err)
		}
		return jsonResource(CertificatesSummaryURI, summary)
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(raw),
			},
		},
	}, nil
}
