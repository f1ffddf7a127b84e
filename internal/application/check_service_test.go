package application_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/perfgate/perfgate/internal/application"
	"github.com/perfgate/perfgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	doc  *domain.ResultsDocument
	err  error
	path string
}

func (l *stubLoader) Load(path string) (*domain.ResultsDocument, error) {
	l.path = path
	return l.doc, l.err
}

type stubGit struct {
	hash string
	err  error
}

func (g stubGit) CommitHash(string) (string, error) { return g.hash, g.err }

func TestCheckService_Passes(t *testing.T) {
	loader := &stubLoader{doc: &domain.ResultsDocument{Metrics: map[string]domain.MetricRecord{
		"http_req_duration": {"p(95)": 1500},
		"http_req_failed":   {"rate": 0.005},
	}}}

	verdict, err := application.NewCheckService(loader).Check("results.json")
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
	assert.Equal(t, "results.json", verdict.Source)
	assert.Equal(t, "results.json", loader.path)
	assert.Empty(t, verdict.CommitHash)
}

func TestCheckService_Fails(t *testing.T) {
	loader := &stubLoader{doc: &domain.ResultsDocument{Metrics: map[string]domain.MetricRecord{
		"http_req_failed": {"rate": 0.5},
	}}}

	verdict, err := application.NewCheckService(loader).Check("results.json")
	require.NoError(t, err, "an SLA failure is a verdict, not an error")
	assert.False(t, verdict.Passed)
}

func TestCheckService_LoadErrorPropagates(t *testing.T) {
	loadErr := &domain.LoadError{Path: "missing.json", Err: os.ErrNotExist}
	loader := &stubLoader{err: loadErr}

	verdict, err := application.NewCheckService(loader).Check("missing.json")
	assert.Nil(t, verdict)

	var target *domain.LoadError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "missing.json", target.Path)
}

func TestCheckService_AttachesCommit(t *testing.T) {
	loader := &stubLoader{doc: &domain.ResultsDocument{}}
	svc := application.NewCheckService(loader,
		application.WithGitInfo(stubGit{hash: "abc123"}, "."))

	verdict, err := svc.Check("results.json")
	require.NoError(t, err)
	assert.Equal(t, "abc123", verdict.CommitHash)
}

func TestCheckService_CommitLookupFailureIsIgnored(t *testing.T) {
	loader := &stubLoader{doc: &domain.ResultsDocument{}}
	svc := application.NewCheckService(loader,
		application.WithGitInfo(stubGit{err: errors.New("not a repo")}, "."))

	verdict, err := svc.Check("results.json")
	require.NoError(t, err)
	assert.True(t, verdict.Passed)
	assert.Empty(t, verdict.CommitHash)
}

func TestCheckService_LogsRuleEvaluations(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	loader := &stubLoader{doc: &domain.ResultsDocument{}}

	_, err := application.NewCheckService(loader, application.WithLogger(logger)).Check("results.json")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rule=p95_latency")
	assert.Contains(t, buf.String(), "intent accuracy not reported")
}
