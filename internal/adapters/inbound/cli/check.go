package cli

import (
	"fmt"

	"github.com/perfgate/perfgate/internal/adapters/outbound/config"
	"github.com/perfgate/perfgate/internal/adapters/outbound/gitinfo"
	"github.com/perfgate/perfgate/internal/adapters/outbound/logging"
	"github.com/perfgate/perfgate/internal/adapters/outbound/results"
	"github.com/perfgate/perfgate/internal/adapters/outbound/tui"
	"github.com/perfgate/perfgate/internal/application"
	"github.com/perfgate/perfgate/internal/domain"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	configPath string
	color      string
	logLevel   string
	logFormat  string
	noCommit   bool
}

func runCheck(cmd *cobra.Command, path string, opts checkOptions) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig(cmd, config.New(), opts)
	if err != nil {
		fmt.Fprintf(out, "Error checking performance: %v\n", err)
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat == domain.LogFormatJSON)

	svcOpts := []application.Option{application.WithLogger(logger)}
	if cfg.CommitEnabled() {
		svcOpts = append(svcOpts, application.WithGitInfo(gitinfo.New(), "."))
	}
	svc := application.NewCheckService(results.New(), svcOpts...)

	verdict, err := svc.Check(path)
	if err != nil {
		fmt.Fprintf(out, "Error checking performance: %v\n", err)
		return fmt.Errorf("checking performance: %w", err)
	}

	fmt.Fprint(out, tui.New(out, cfg.Color).RenderVerdict(verdict))

	if !verdict.Passed {
		return domain.ErrSLANotMet
	}
	return nil
}

// loadConfig reads the config file and overlays explicitly set flags.
func loadConfig(cmd *cobra.Command, loader domain.ConfigLoader, opts checkOptions) (domain.Config, error) {
	cfg, err := loader.Load(opts.configPath)
	if err != nil {
		return domain.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if opts.noCommit {
		off := false
		cfg.ShowCommit = &off
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg.WithDefaults(), nil
}
