package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/perfgate/perfgate/internal/adapters/inbound/mcp"
	"github.com/perfgate/perfgate/internal/adapters/outbound/logging"
	"github.com/perfgate/perfgate/internal/domain"
)

func newMCPCmd() *cobra.Command {
	var (
		root     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "check-performance-mcp",
		Short: "Serve the performance SLA gate over MCP (stdio)",
		Long: "Start an MCP server on stdio exposing check_performance and check_performance_json, " +
			"so AI coding assistants can gate on k6 results. Logs are written to stderr as JSON.",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (domain.Config{LogLevel: logLevel}).Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			// stdout carries the MCP protocol; logs must stay on stderr.
			logger := logging.New(cmd.ErrOrStderr(), logLevel, true)

			s := mcpadapter.NewCheckPerformanceMCPServer(root, logger)
			return server.ServeStdio(s)
		},
	}
	cmd.SetVersionTemplate("check-performance-mcp {{.Version}}\n")

	cmd.Flags().StringVar(&root, "root", ".", "Directory results_file paths are resolved against")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level for stderr diagnostics: debug, info, warn or error")

	return cmd
}

// NewMCPCmdForTest returns the MCP server command for testing.
func NewMCPCmdForTest() *cobra.Command {
	return newMCPCmd()
}

// ExecuteMCP runs the MCP server command.
func ExecuteMCP() error {
	return newMCPCmd().Execute()
}
