package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/perfgate/perfgate/internal/adapters/outbound/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := logging.New(buf, "warn", false)

	logger.Info("loaded results")
	logger.Warn("throughput below target")

	out := buf.String()
	assert.NotContains(t, out, "loaded results")
	assert.Contains(t, out, "throughput below target")
}

func TestNew_JSONFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	logging.New(buf, "debug", true).Debug("evaluated rule", "rule", "p95_latency")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "p95_latency", record["rule"])
}

func TestNew_UnknownLevelIsInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := logging.New(buf, "chatty", false)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logging.Discard().Error("dropped") })
}
