package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateRedirectionHostArgs identifies a redirection host and carries the
// fields to change.
type UpdateRedirectionHostArgs struct {
	IDArgs
	npm.RedirectionHostRequest
}

// RegisterRedirectionHostTools registers the redirection host operations
// with the MCP server.
func RegisterRedirectionHostTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_redirection_hosts",
		Description: "List all redirection hosts",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		hosts, err := client.ListRedirectionHosts(ctx)
		if err != nil {
			return ErrorResponse("Failed to list redirection hosts: %v", err), nil, nil
		}
		return JSONResponse(hosts), hosts, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_redirection_host",
		Description: "Get a redirection host by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.GetRedirectionHost(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get redirection host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_redirection_host",
		Description: "Create a redirection host sending one or more domains to another domain",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.RedirectionHostRequest) (*mcp.CallToolResult, any, error) {
		host, err := client.CreateRedirectionHost(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create redirection host: %v", err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_redirection_host",
		Description: "Update an existing redirection host; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateRedirectionHostArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.UpdateRedirectionHost(ctx, args.ID, args.RedirectionHostRequest)
		if err != nil {
			return ErrorResponse("Failed to update redirection host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_redirection_host",
		Description: "Delete a redirection host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteRedirectionHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete redirection host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Redirection host %d deleted", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enable_redirection_host",
		Description: "Enable a redirection host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.EnableRedirectionHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to enable redirection host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Redirection host %d enabled", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "disable_redirection_host",
		Description: "Disable a redirection host without deleting its configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DisableRedirectionHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to disable redirection host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Redirection host %d disabled", args.ID), nil, nil
	})
}
