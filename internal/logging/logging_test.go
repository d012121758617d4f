package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.AddSync(&buf), false)

	logger.Debugw("hidden", "key", "value")
	logger.Infow("Parsed subtitle file", "entries", 3)
	_ = logger.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Parsed subtitle file")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "entries")
}

func TestVerboseLoggerWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.AddSync(&buf), true)

	logger.Debugw("decode tier", "tier", "declared")
	_ = logger.Sync()

	assert.Contains(t, buf.String(), "decode tier")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestNop(t *testing.T) {
	Nop().Infow("nothing")
}
