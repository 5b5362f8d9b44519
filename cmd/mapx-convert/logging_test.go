package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		verbose    bool
		debug      bool
		want       zapcore.Level
	}{
		{"configured info", "info", false, false, zapcore.InfoLevel},
		{"configured error", "error", false, false, zapcore.ErrorLevel},
		{"configured debug", "debug", false, false, zapcore.DebugLevel},
		{"verbose lowers error", "error", true, false, zapcore.InfoLevel},
		{"verbose keeps debug", "debug", true, false, zapcore.DebugLevel},
		{"debug wins", "warn", true, true, zapcore.DebugLevel},
		{"unknown falls back to warn", "loud", false, false, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := newLogger(io.Discard, tt.configured, tt.verbose, tt.debug)

			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestRun_LogLevelFromEnv(t *testing.T) {
	const doc = `{"text":{"title":{"en":"Lakes"}}}`

	t.Setenv("MAPX_LOG_LEVEL", "error")

	code, _, stderr := runCLI(t, doc, "mapx2iso", "-")
	assert.Equal(t, 0, code, stderr)
	assert.NotContains(t, stderr, "Generated file identifier")

	code, _, stderr = runCLI(t, doc, "mapx2iso", "-v", "-")
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Generated file identifier")

	t.Setenv("MAPX_LOG_LEVEL", "info")

	code, _, stderr = runCLI(t, doc, "mapx2iso", "-")
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Generated file identifier")

	t.Setenv("MAPX_LOG_LEVEL", "loud")

	code, _, stderr = runCLI(t, doc, "mapx2iso", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "config_invalid")
}
