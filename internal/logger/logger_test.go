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

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := ParseLevel(tt.in)
			assert.Equal(t, tt.expected, lvl)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { defaultLogger = nil })

	t.Run("Text format filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&buf, "warn", "text")

		Debug("hidden")
		Get().Info("also hidden")
		Get().Warn("shown", "key", "value")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("JSON format", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&buf, "debug", "json")

		DebugContext(context.Background(), "rent added", "id", "abc")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "rent added", entry["msg"])
		assert.Equal(t, "abc", entry["id"])
		assert.Equal(t, "DEBUG", entry["level"])
	})

	t.Run("Command attribute", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&buf, "info", "text")

		WithCommand("company").Info("started")
		assert.Contains(t, buf.String(), "command=company")
	})
}
