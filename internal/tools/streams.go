package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// UpdateStreamArgs identifies a stream and carries the fields to change.
type UpdateStreamArgs struct {
	IDArgs
	npm.StreamRequest
}

// RegisterStreamTools registers the TCP/UDP stream operations with the
// MCP server.
func RegisterStreamTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_streams",
		Description: "List all TCP/UDP streams",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		streams, err := client.ListStreams(ctx)
		if err != nil {
			return ErrorResponse("Failed to list streams: %v", err), nil, nil
		}
		return JSONResponse(streams), streams, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_stream",
		Description: "Get a stream by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		stream, err := client.GetStream(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get stream %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(stream), stream, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_stream",
		Description: "Create a TCP/UDP stream forwarding an incoming port to an upstream",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.StreamRequest) (*mcp.CallToolResult, any, error) {
		stream, err := client.CreateStream(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create stream: %v", err), nil, nil
		}
		return JSONResponse(stream), stream, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_stream",
		Description: "Update an existing stream; only supplied fields change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateStreamArgs) (*mcp.CallToolResult, any, error) {
		stream, err := client.UpdateStream(ctx, args.ID, args.StreamRequest)
		if err != nil {
			return ErrorResponse("Failed to update stream %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(stream), stream, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_stream",
		Description: "Delete a stream",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteStream(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete stream %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Stream %d deleted", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enable_stream",
		Description: "Enable a stream",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.EnableStream(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to enable stream %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Stream %d enabled", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "disable_stream",
		Description: "Disable a stream without deleting its configuration",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DisableStream(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to disable stream %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Stream %d disabled", args.ID), nil, nil
	})
}
