package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridsearch/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level     string
		verbosity int
		enabled   zapcore.Level
		disabled  zapcore.Level
	}{
		{"", 0, zapcore.InfoLevel, zapcore.DebugLevel},
		{"", 1, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"", 5, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn", 0, zapcore.WarnLevel, zapcore.InfoLevel},
		{"warn", 1, zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		logger, err := logging.New(tc.level, tc.verbosity)
		require.NoError(t, err)
		assert.Truef(t, logger.Core().Enabled(tc.enabled), "%q/%d should enable %v", tc.level, tc.verbosity, tc.enabled)
		assert.Falsef(t, logger.Core().Enabled(tc.disabled), "%q/%d should disable %v", tc.level, tc.verbosity, tc.disabled)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New("loud", 0)
	assert.Error(t, err)
}
