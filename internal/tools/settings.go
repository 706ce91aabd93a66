package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// SettingIDArgs identifies a setting by its string id.
type SettingIDArgs struct {
	ID string `json:"id" jsonschema:"setting id, e.g. default-site"`
}

// UpdateSettingArgs identifies a setting and carries its new value.
type UpdateSettingArgs struct {
	SettingIDArgs
	npm.SettingUpdateRequest
}

// RegisterSettingTools registers the settings operations with the MCP
// server.
func RegisterSettingTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_settings",
		Description: "List all settings",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		settings, err := client.ListSettings(ctx)
		if err != nil {
			return ErrorResponse("Failed to list settings: %v", err), nil, nil
		}
		return JSONResponse(settings), settings, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_setting",
		Description: "Get a setting by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SettingIDArgs) (*mcp.CallToolResult, any, error) {
		setting, err := client.GetSetting(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get setting %q: %v", args.ID, err), nil, nil
		}
		return JSONResponse(setting), setting, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_setting",
		Description: "Update a setting's value",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UpdateSettingArgs) (*mcp.CallToolResult, any, error) {
		setting, err := client.UpdateSetting(ctx, args.ID, args.SettingUpdateRequest)
		if err != nil {
			return ErrorResponse("Failed to update setting %q: %v", args.ID, err), nil, nil
		}
		return JSONResponse(setting), setting, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_hosts_report",
		Description: "Get the proxy manager's own host count report",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		report, err := client.HostsReport(ctx)
		if err != nil {
			return ErrorResponse("Failed to get hosts report: %v", err), nil, nil
		}
		return JSONResponse(report), report, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_audit_log",
		Description: "List audit log entries recording configuration changes",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		entries, err := client.ListAuditLog(ctx)
		if err != nil {
			return ErrorResponse("Failed to list audit log: %v", err), nil, nil
		}
		return JSONResponse(entries), entries, nil
	})
}
