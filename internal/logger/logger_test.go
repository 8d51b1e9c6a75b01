package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo}, // Defaults to info
		{"", slog.LevelInfo},        // Defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level)
			require.NotNil(t, log)
			assert.True(t, log.Enabled(context.Background(), tt.expected))
			if tt.expected > slog.LevelDebug {
				assert.False(t, log.Enabled(context.Background(), tt.expected-4))
			}
		})
	}
}

func TestNewToWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, "info")

	log.Debug("hidden")
	log.Info("answered", "tokens", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "answered", line["msg"])
	assert.Equal(t, float64(3), line["tokens"])
}
