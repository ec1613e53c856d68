// Package diag is the structured logging sink the core consumes for
// debug-only diagnostics. Its only reporter is projection's Newton
// non-convergence; quadtree and topology do not log through it (their
// invariant violations panic instead).
//
// Nothing in this core owns a logger outright; the sink is meant to be
// supplied by whatever embeds this module, so the seam here is a small
// interface instead of a package-level log.Logger.
package diag

import (
	"log"
	"sync"

	"github.com/cubesphere/planetgrid/internal/tuning"
)

// Logger is the minimal sink this core writes debug diagnostics to.
type Logger interface {
	Debugf(format string, args ...any)
}

var (
	mu      sync.RWMutex
	current Logger = NopLogger{}
)

// SetGlobal installs the logger this module reports debug diagnostics to
// (currently only Newton non-convergence in projection). Passing nil
// restores the no-op default.
func SetGlobal(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = NopLogger{}
	}
	current = l
}

// Global returns the currently installed logger.
func Global() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debugf reports a diagnostic through the installed logger, but only when
// tuning.GetLogLevel() is at or above LogVerbose. Callers that would
// otherwise format arguments on every call (Newton iteration counts,
// rejected-candidate scans) should go through this instead of Global()
// directly so that verbosity actually gates the work.
func Debugf(format string, args ...any) {
	if tuning.GetLogLevel() < tuning.LogVerbose {
		return
	}
	Global().Debugf(format, args...)
}

// NopLogger discards everything. It is the default when no logger is
// supplied: non-convergence diagnostics are optional to observe, never
// load-bearing for correctness.
type NopLogger struct{}

// Debugf implements Logger.
func (NopLogger) Debugf(string, ...any) {}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	L *log.Logger
}

// NewStdLogger wraps l. If l is nil, log.Default() is used.
func NewStdLogger(l *log.Logger) StdLogger {
	if l == nil {
		l = log.Default()
	}
	return StdLogger{L: l}
}

// Debugf implements Logger.
func (s StdLogger) Debugf(format string, args ...any) {
	s.L.Printf("DEBUG "+format, args...)
}
