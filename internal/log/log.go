// Package log holds the zerolog logger shared by plstr's packages.
// It is a no-op until SetLogger or SetStd is called.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
)

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	pkgLogger = l
	mu.Unlock()
}

// SetStd logs human-readable lines to stderr at the given level.
func SetStd(level zerolog.Level) {
	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

// SetOutput logs JSON (or whatever w renders) to w at the given level.
func SetOutput(w io.Writer, level zerolog.Level) {
	SetLogger(zerolog.New(w).Level(level).With().Timestamp().Logger())
}

// Disable restores the no-op logger.
func Disable() {
	SetLogger(zerolog.Nop())
}

// Logger returns the current package logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

// Debug starts a debug level event on the package logger.
func Debug() *zerolog.Event { l := Logger(); return l.Debug() }

// Info starts an info level event on the package logger.
func Info() *zerolog.Event { l := Logger(); return l.Info() }

// Warn starts a warn level event on the package logger.
func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

// Error starts an error level event on the package logger.
func Error() *zerolog.Event { l := Logger(); return l.Error() }
