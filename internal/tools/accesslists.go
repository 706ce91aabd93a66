package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateAccessListArgs identifies an access list and carries the fields
// to change.
type UpdateAccessListArgs struct {
	IDArgs
	npm.AccessListRequest
}

// RegisterAccessListTools registers the access list operations with the
// MCP server.
func RegisterAccessListTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_access_lists",
		Description: "List all access lists",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		lists, err := client.ListAccessLists(ctx)
		if err != nil {
			return ErrorResponse("Failed to list access lists: %v", err), nil, nil
		}
		return JSONResponse(lists), lists, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_access_list",
		Description: "Get an access list by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		list, err := client.GetAccessList(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get access list %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(list), list, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_access_list",
		Description: "Create an access list of basic auth entries and client address rules",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.AccessListRequest) (*mcp.CallToolResult, any, error) {
		list, err := client.CreateAccessList(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create access list: %v", err), nil, nil
		}
		return JSONResponse(list), list, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_access_list",
		Description: "Update an existing access list; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateAccessListArgs) (*mcp.CallToolResult, any, error) {
		list, err := client.UpdateAccessList(ctx, args.ID, args.AccessListRequest)
		if err != nil {
			return ErrorResponse("Failed to update access list %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(list), list, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_access_list",
		Description: "Delete an access list",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteAccessList(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete access list %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Access list %d deleted", args.ID), nil, nil
	})
}
