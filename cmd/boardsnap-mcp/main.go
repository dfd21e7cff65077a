package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"boardsnap/internal/adapters/boardapi"
	"boardsnap/internal/adapters/filesystem"
	mcpadapter "boardsnap/internal/adapters/mcp"
	"boardsnap/internal/config"
	"boardsnap/internal/logging"
)

func main() {
	cfg := config.Load()
	outputFlag := flag.String("output", cfg.OutputDir, "directory to write artifacts to")
	flag.Parse()

	logger := logging.New(cfg.Debug)
	api := boardapi.New(cfg.BaseURL, cfg.APIKey, cfg.APIToken, cfg.HTTPTimeout, logger)
	sink := filesystem.NewSink(*outputFlag)

	mcpServer := server.NewMCPServer(
		"boardsnap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, api, sink, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("boardsnap-mcp: %v", err)
	}
}
