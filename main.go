package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rgracey/mcp-npm/internal/cmd"
	"github.com/rgracey/mcp-npm/internal/config"
	"github.com/rgracey/mcp-npm/internal/npm"
	"github.com/rgracey/mcp-npm/internal/resources"
	"github.com/rgracey/mcp-npm/internal/tools"
)

func main() {
	if code := cmd.Run(os.Args[1:]); code >= 0 {
		os.Exit(code)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	client := npm.NewClient(cfg)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "mcp-npm",
		Version: "0.1.0",
	}, nil)

	tools.RegisterAll(server, client)
	resources.RegisterAll(server, client)

	log.Printf("Starting MCP server for %s...", cfg)
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
