// Package logging builds the console logger used by the build and the CLI.
package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level returns the log level for the CLI verbosity flags. Verbose wins
// over quiet.
func Level(quiet, verbose bool) zapcore.Level {
	switch {
	case verbose:
		return zap.DebugLevel
	case quiet:
		return zap.WarnLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a console logger writing to w at the given level.
// Debug level adds caller information.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = nil
	encCfg.StacktraceKey = ""

	var opts []zap.Option
	if level == zap.DebugLevel {
		encCfg.EncodeCaller = zapcore.ShortCallerEncoder
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core, opts...)
}
