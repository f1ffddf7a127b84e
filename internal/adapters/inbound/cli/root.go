package cli

import (
	"fmt"

	"github.com/perfgate/perfgate/internal/domain"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

const usageLine = "Usage: check-performance <results.json>"

func newRootCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check-performance <results.json>",
		Short: "Gate a build on performance SLAs",
		Long: "Check a k6 summary export against fixed SLAs (P95 latency < 2000ms, error rate < 1%, " +
			"intent accuracy >= 95% when reported) and exit non-zero when any of them is missed.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          exactlyOneResultsFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.OutOrStdout(), usageLine)
		return &domain.UsageError{Reason: err.Error()}
	})
	cmd.SetVersionTemplate("check-performance {{.Version}}\n")

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the YAML config (default .check-performance.yaml)")
	cmd.Flags().StringVar(&opts.color, "color", "", "Colorize the report: auto, always or never")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level for stderr diagnostics: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().BoolVar(&opts.noCommit, "no-commit", false, "Do not show the git commit in the report header")

	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// exactlyOneResultsFile prints the usage line before any file is touched.
func exactlyOneResultsFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return &domain.UsageError{Reason: fmt.Sprintf("expected 1 results file, got %d arguments", len(args))}
	}
	return nil
}
