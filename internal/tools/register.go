// Package tools exposes the proxy manager operation catalog as MCP tools.
// Each tool is a thin typed wrapper around one client method; the catalog
// is fixed and registered once at startup.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// RegisterAll registers the complete operation catalog with the MCP
// server.
func RegisterAll(server *mcp.Server, client *npm.Client) {
	RegisterProxyHostTools(server, client)
	RegisterRedirectionHostTools(server, client)
	RegisterDeadHostTools(server, client)
	RegisterStreamTools(server, client)
	RegisterCertificateTools(server, client)
	RegisterAccessListTools(server, client)
	RegisterUserTools(server, client)
	RegisterSettingTools(server, client)
}
