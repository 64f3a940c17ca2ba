package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/chunkgraph/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(99), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error"} {
		t.Run(name, func(t *testing.T) {
			level, err := domain.ParseLogLevel(strings.ToUpper(name))
			require.NoError(t, err)
			assert.Equal(t, name, level.Name())
		})
	}

	_, err := domain.ParseLogLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownLogLevel.Error())
}
