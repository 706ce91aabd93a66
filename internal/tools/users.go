package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateUserArgs identifies a user and carries the fields to change.
type UpdateUserArgs struct {
	IDArgs
	npm.UserRequest
}

// RegisterUserTools registers the user operations with the MCP server.
func RegisterUserTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		users, err := client.ListUsers(ctx)
		if err != nil {
			return ErrorResponse("Failed to list users: %v", err), nil, nil
		}
		return JSONResponse(users), users, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get a user by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		user, err := client.GetUser(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get user %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(user), user, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a user account",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.UserRequest) (*mcp.CallToolResult, any, error) {
		user, err := client.CreateUser(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create user: %v", err), nil, nil
		}
		return JSONResponse(user), user, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_user",
		Description: "Update an existing user; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateUserArgs) (*mcp.CallToolResult, any, error) {
		user, err := client.UpdateUser(ctx, args.ID, args.UserRequest)
		if err != nil {
			return ErrorResponse("Failed to update user %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(user), user, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_user",
		Description: "Delete a user",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteUser(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete user %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("User %d deleted", args.ID), nil, nil
	})
}
