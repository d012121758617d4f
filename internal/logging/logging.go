package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sugared zap logger used by the CLI
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes console formatted logs to stderr. Debug entries are only
// written when verbose is set.
func NewLogger(verbose bool) *Logger {
	return New(zapcore.Lock(os.Stderr), verbose)
}

func New(out zapcore.WriteSyncer, verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	if !verbose {
		encoderCfg.CallerKey = ""
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), out, level)

	opts := []zap.Option{}
	if verbose {
		opts = append(opts, zap.AddCaller())
	}

	return &Logger{zap.New(core, opts...).Sugar()}
}

// discards everything
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
