package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"verbose", slog.LevelWarn},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestInitialize(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&Config{Level: slog.LevelInfo, Format: "json", Output: &buf})

		Component("catalog").Info("loaded", "operations", 40)

		assert.Contains(t, buf.String(), `"component":"catalog"`)
		assert.Contains(t, buf.String(), `"operations":40`)
	})

	t.Run("level filters messages", func(t *testing.T) {
		var buf bytes.Buffer
		Initialize(&Config{Level: slog.LevelError, Format: "text", Output: &buf})

		Warn("ignored")
		Error("kept")

		assert.NotContains(t, buf.String(), "ignored")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		Initialize(nil)
		assert.NotNil(t, GetGlobalLogger())
	})
}
