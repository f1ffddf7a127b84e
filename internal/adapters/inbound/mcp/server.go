package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// NewCheckPerformanceMCPServer creates an MCP server exposing the SLA gate.
// Relative results_file arguments are resolved against root, which is also
// where the commit shown in reports is looked up.
func NewCheckPerformanceMCPServer(root string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"check-performance",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, root, logger)
	registerResources(s)

	return s
}
