package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zap.NewAtomicLevelAt(zapcore.InfoLevel)).Sugar()

	logger.Debugf("hidden %d", 1)
	logger.Infof("nest egg %s", "3001460.70")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "info")
	assert.Contains(t, out, "nest egg 3001460.70")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl.Level())

	lvl, err = ParseLevel("chatty")
	assert.Error(t, err)
	assert.Equal(t, zapcore.InfoLevel, lvl.Level())
}

func TestNew_RespectsLevel(t *testing.T) {
	logger := New(&bytes.Buffer{}, zap.NewAtomicLevelAt(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
