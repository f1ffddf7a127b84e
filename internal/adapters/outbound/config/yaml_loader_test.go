package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/perfgate/perfgate/internal/adapters/outbound/config"
	"github.com/perfgate/perfgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".check-performance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
color: never
log_level: debug
log_format: json
show_commit: false
`)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.LogFormatJSON, cfg.LogFormat)
	assert.False(t, cfg.CommitEnabled())
}

func TestYAMLLoader_PartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, `color: always`)

	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorAlways, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.CommitEnabled())
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	_, err := appconfig.New().Load(writeConfig(t, `{{{invalid yaml`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestYAMLLoader_RejectsThresholdKeys(t *testing.T) {
	_, err := appconfig.New().Load(writeConfig(t, `
p95_threshold_ms: 5000
`))
	require.Error(t, err, "thresholds are fixed and must not be configurable")
}

func TestYAMLLoader_InvalidValue(t *testing.T) {
	_, err := appconfig.New().Load(writeConfig(t, `color: rainbow`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")
}
