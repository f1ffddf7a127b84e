package application

import (
	"log/slog"

	"github.com/perfgate/perfgate/internal/domain"
	"github.com/perfgate/perfgate/internal/domain/sla"
)

// CheckService orchestrates the gate pipeline:
// load results -> evaluate fixed rules -> attach commit.
type CheckService struct {
	loader  domain.ResultsLoader
	git     domain.GitInfo
	gitPath string
	logger  *slog.Logger
}

// Option configures a CheckService.
type Option func(*CheckService)

// WithGitInfo attaches the HEAD commit of the repository at path to each
// verdict. Lookup failures are logged and otherwise ignored.
func WithGitInfo(git domain.GitInfo, path string) Option {
	return func(s *CheckService) {
		s.git = git
		s.gitPath = path
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *CheckService) {
		s.logger = logger
	}
}

func NewCheckService(loader domain.ResultsLoader, opts ...Option) *CheckService {
	s := &CheckService{
		loader: loader,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check loads the results document at path and evaluates it. Load and
// format errors are returned unchanged; no partial verdict is produced.
func (s *CheckService) Check(path string) (*domain.Verdict, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		s.logger.Debug("loading results failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	s.logger.Debug("loaded results", slog.String("path", path), slog.Int("metrics", len(doc.Metrics)))

	verdict := sla.Evaluate(doc)
	verdict.Source = path

	for _, res := range verdict.Results {
		s.logger.Debug("evaluated rule",
			slog.String("rule", res.Rule.Name),
			slog.Float64("observed", res.Observed),
			slog.String("status", string(res.Status)),
		)
	}
	if !doc.Has(domain.MetricIntentAccuracy) {
		s.logger.Debug("intent accuracy not reported, rule skipped")
	}

	if s.git != nil {
		hash, err := s.git.CommitHash(s.gitPath)
		if err != nil {
			s.logger.Debug("commit lookup skipped", slog.Any("error", err))
		} else {
			verdict.CommitHash = hash
		}
	}

	if !verdict.Passed {
		s.logger.Info("SLA gate failed", slog.Int("failures", len(verdict.Failures())))
	}

	return verdict, nil
}
