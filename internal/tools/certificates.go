package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/npm"
)

// RegisterCertificateTools registers the certificate operations with the
// MCP server.
func RegisterCertificateTools(server *mcp.Server, client *npm.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_certificates",
		Description: "List all certificates",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		certs, err := client.ListCertificates(ctx)
		if err != nil {
			return ErrorResponse("Failed to list certificates: %v", err), nil, nil
		}
		return JSONResponse(certs), certs, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_certificate",
		Description: "Get a certificate by id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		cert, err := client.GetCertificate(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to get certificate %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(cert), cert, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_certificate",
		Description: "Request a new certificate; provider settings go in meta",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args npm.CertificateRequest) (*mcp.CallToolResult, any, error) {
		cert, err := client.CreateCertificate(ctx, args)
		if err != nil {
			return ErrorResponse("Failed to create certificate: %v", err), nil, nil
		}
		return JSONResponse(cert), cert, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_certificate",
		Description: "Delete a certificate",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		if err := client.DeleteCertificate(ctx, args.ID); err != nil {
			return ErrorResponse("Failed to delete certificate %d: %v", args.ID, err), nil, nil
		}
		return SuccessResponse("Certificate %d deleted", args.ID), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "renew_certificate",
		Description: "Trigger renewal of a certificate",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args IDArgs) (*mcp.CallToolResult, any, error) {
		cert, err := client.RenewCertificate(ctx, args.ID)
		if err != nil {
			return ErrorResponse("Failed to renew certificate %d: %v", args.ID, err), nil, nil
		}
		return JSONResponse(cert), cert, nil
	})
}
