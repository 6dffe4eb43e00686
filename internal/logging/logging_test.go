package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantError bool
	}{
		{name: "defaults", wantLevel: zapcore.InfoLevel},
		{name: "debug json", level: "DEBUG", format: "json", wantLevel: zapcore.DebugLevel},
		{name: "warning console", level: "warning", format: "console", wantLevel: zapcore.WarnLevel},
		{name: "error", level: "error", wantLevel: zapcore.ErrorLevel},
		{name: "bad level", level: "loud", wantError: true},
		{name: "bad format", level: "info", format: "xml", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	logger, err := New("info", "json")
	require.NoError(t, err)
	assert.Same(t, logger, OrNop(logger))
}
