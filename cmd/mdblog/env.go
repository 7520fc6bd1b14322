package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-mdblog/internal/logging"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the working directory and the logger factory.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Getwd     func() (string, error)
	NewLogger func(w io.Writer, level zapcore.Level) *zap.Logger

	// SetMaxProcs adjusts GOMAXPROCS to the container CPU quota.
	// Nil leaves GOMAXPROCS untouched.
	SetMaxProcs func(logf func(format string, args ...interface{}))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Getwd:     os.Getwd,
		NewLogger: logging.New,
		SetMaxProcs: func(logf func(string, ...interface{})) {
			// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
			// in which case Go runtime defaults apply and the program continues safely.
			_, _ = maxprocs.Set(maxprocs.Logger(logf))
		},
	}
}
