package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateProxyHostArgs identifies a proxy host and carries the fields to
// change.
type UpdateProxyHostArgs struct {
	IDArgs
	npm.ProxyHostRequest
}

// RegisterProxyHostTools registers the proxy host operations with the MCP
// server.
func RegisterProxyHostTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_proxy_hosts",
		Description: "List all proxy hosts",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		hosts, err := client.ListProxyHosts(ctx)
		if err != nil {
			return ErrorResponse("Failed to list proxy hosts: %v", err), nil, nil
		}
		return JSONResponse(hosts), hosts, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_proxy_host",
		Description: "Get a proxy host by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.GetProxyHost(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get proxy host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_proxy_host",
		Description: "Create a proxy host forwarding one or more domains to an upstream",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.ProxyHostRequest) (*mcp.CallToolResult, any, error) {
		host, err := client.CreateProxyHost(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create proxy host: %v", err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_proxy_host",
		Description: "Update an existing proxy host; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateProxyHostArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.UpdateProxyHost(ctx, args.ID, args.ProxyHostRequest)
		if err != nil {
			return ErrorResponse("Failed to update proxy host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_proxy_host",
		Description: "Delete a proxy host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteProxyHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete proxy host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Proxy host %d deleted", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enable_proxy_host",
		Description: "Enable a proxy host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.EnableProxyHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to enable proxy host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Proxy host %d enabled", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "disable_proxy_host",
		Description: "Disable a proxy host without deleting its configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DisableProxyHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to disable proxy host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Proxy host %d disabled", args.ID), nil, nil
	})
}
