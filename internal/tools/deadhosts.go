package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateDeadHostArgs identifies a 404 host and carries the fields to
// change.
type UpdateDeadHostArgs struct {
	IDArgs
	npm.DeadHostRequest
}

// RegisterDeadHostTools registers the 404 host operations with the MCP
// server.
func RegisterDeadHostTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dead_hosts",
		Description: "List all 404 hosts",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		hosts, err := client.ListDeadHosts(ctx)
		if err != nil {
			return ErrorResponse("Failed to list 404 hosts: %v", err), nil, nil
		}
		return JSONResponse(hosts), hosts, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dead_host",
		Description: "Get a 404 host by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.GetDeadHost(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get 404 host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_dead_host",
		Description: "Create a 404 host answering for domains with no upstream",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.DeadHostRequest) (*mcp.CallToolResult, any, error) {
		host, err := client.CreateDeadHost(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create 404 host: %v", err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_dead_host",
		Description: "Update an existing 404 host; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateDeadHostArgs) (*mcp.CallToolResult, any, error) {
		host, err := client.UpdateDeadHost(ctx, args.ID, args.DeadHostRequest)
		if err != nil {
			return ErrorResponse("Failed to update 404 host %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(host), host, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_dead_host",
		Description: "Delete a 404 host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteDeadHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete 404 host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("404 host %d deleted", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enable_dead_host",
		Description: "Enable a 404 host",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.EnableDeadHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to enable 404 host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("404 host %d enabled", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "disable_dead_host",
		Description: "Disable a 404 host without deleting its configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DisableDeadHost(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to disable 404 host %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("404 host %d disabled", args.ID), nil, nil
	})
}
