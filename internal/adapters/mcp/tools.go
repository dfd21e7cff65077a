package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"boardsnap/internal/application/commands"
	"boardsnap/internal/ports"
)

// RegisterTools adds the board snapshot tools to the MCP server.
func RegisterTools(s *server.MCPServer, api ports.BoardAPI, sink ports.Sink, logger *log.Logger) {
	s.AddTool(downloadTool(), downloadHandler(api, sink, logger))
	s.AddTool(exportTool(), exportHandler(api, sink, logger))
}

// --- download ---

func downloadTool() mcp.Tool {
	return mcp.NewTool("download_board",
		mcp.WithDescription("Download every file attachment on a board and write a sorted card manifest (00-cards.json). Link attachments are skipped; individual download failures are skipped too."),
		mcp.WithString("board_url",
			mcp.Description("Full URL of the board page"),
			mcp.Required(),
		),
	)
}

func downloadHandler(api ports.BoardAPI, sink ports.Sink, logger *log.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boardURL := req.GetString("board_url", "")

		cmd := commands.NewDownloadCommand(api, sink, nil, logger, boardURL)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Saved %d attachments (%d failed) across %d cards. Manifest: %s",
			result.Saved, result.Failed, result.Cards, result.ManifestPath,
		)), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_board",
		mcp.WithDescription("Write the board's bulk export as JSON with every file attachment's content inlined as base64. All-or-nothing: if any attachment fails, nothing is written."),
		mcp.WithString("board_url",
			mcp.Description("Full URL of the board page"),
			mcp.Required(),
		),
		mcp.WithString("export_link",
			mcp.Description("Bulk export URL when already known. Used only if it ends in <shortlink>.json; otherwise derived from board_url."),
		),
	)
}

func exportHandler(api ports.BoardAPI, sink ports.Sink, logger *log.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		boardURL := req.GetString("board_url", "")
		exportLink := req.GetString("export_link", "")

		cmd := commands.NewExportCommand(api, sink, nil, logger, boardURL, exportLink)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Exported %d cards with %d attachments inlined: %s",
			result.Cards, result.Inlined, result.Path,
		)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
