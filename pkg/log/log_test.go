package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	require.NotNil(t, logger)
	assert.NotNil(t, logger.GetLogrus())
	assert.Equal(t, logrus.InfoLevel, logger.GetLogrus().GetLevel())
}

func TestNewLoggerWithLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"debug level", "debug", logrus.DebugLevel},
		{"info level", "info", logrus.InfoLevel},
		{"warn level", "warn", logrus.WarnLevel},
		{"error level", "error", logrus.ErrorLevel},
		{"invalid level falls back", "invalid", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLoggerWithLevel(tt.level)
			require.NotNil(t, logger)
			assert.Equal(t, tt.expected, logger.GetLogrus().GetLevel())
		})
	}
}

func TestWithField(t *testing.T) {
	logger := NewDefaultLogger()

	scoped := logger.WithField("vendor", 9148)
	require.NotNil(t, scoped)

	// the scoped logger shares the parent's backend
	scopedDefault, ok := scoped.(*DefaultLogger)
	require.True(t, ok)
	assert.Same(t, logger.GetLogrus(), scopedDefault.GetLogrus())
}

func TestLoggerInterface(t *testing.T) {
	var _ Logger = NewDefaultLogger()
}
