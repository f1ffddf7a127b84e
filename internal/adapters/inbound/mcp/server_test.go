package mcp_test

import (
	"testing"

	mcpadapter "github.com/perfgate/perfgate/internal/adapters/inbound/mcp"
	"github.com/perfgate/perfgate/internal/adapters/outbound/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckPerformanceMCPServer(t *testing.T) {
	s := mcpadapter.NewCheckPerformanceMCPServer(".", logging.Discard())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewCheckPerformanceMCPServer(".", logging.Discard())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"check_performance",
		"check_performance_json",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}
