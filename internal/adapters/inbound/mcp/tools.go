package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/perfgate/perfgate/internal/adapters/outbound/gitinfo"
	"github.com/perfgate/perfgate/internal/adapters/outbound/results"
	"github.com/perfgate/perfgate/internal/adapters/outbound/tui"
	"github.com/perfgate/perfgate/internal/application"
	"github.com/perfgate/perfgate/internal/domain"
	"github.com/perfgate/perfgate/internal/domain/sla"
)

// registerTools registers the SLA gate tools on the given server.
func registerTools(s *server.MCPServer, root string, logger *slog.Logger) {
	// 1. check_performance
	s.AddTool(
		mcplib.NewTool("check_performance",
			mcplib.WithDescription("Check a k6 results file against the fixed performance SLAs and return the pass/fail report"),
			mcplib.WithString("results_file",
				mcplib.Required(),
				mcplib.Description("Path to the JSON results file, relative to the server root or absolute"),
			),
		),
		handleCheckPerformance(root, logger),
	)

	// 2. check_performance_json
	s.AddTool(
		mcplib.NewTool("check_performance_json",
			mcplib.WithDescription("Check an inline k6 results document against the fixed performance SLAs"),
			mcplib.WithString("results",
				mcplib.Required(),
				mcplib.Description("The results document as a JSON string with a top-level metrics object"),
			),
		),
		handleCheckPerformanceJSON(),
	)
}

func handleCheckPerformance(root string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("results_file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}

		svc := application.NewCheckService(results.New(),
			application.WithLogger(logger),
			application.WithGitInfo(gitinfo.New(), root),
		)

		verdict, err := svc.Check(path)
		if err != nil {
			return errorResult(fmt.Sprintf("Error checking performance: %v", err)), nil
		}
		return textResult(tui.Plain(io.Discard).RenderVerdict(verdict)), nil
	}
}

func handleCheckPerformanceJSON() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("results")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		doc, err := results.Parse([]byte(raw))
		if err != nil {
			return errorResult(fmt.Sprintf("Error checking performance: %v", &domain.FormatError{Path: "results", Err: err})), nil
		}

		return textResult(tui.Plain(io.Discard).RenderVerdict(sla.Evaluate(doc))), nil
	}
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
