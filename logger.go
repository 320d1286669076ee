package ggtraj

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while frames are being generated or rendered.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggtraj and its sub-packages.
// By default, ggtraj produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by ggtraj:
//   - [slog.LevelDebug]: per-frame diagnostics (skipped dots, clipped sprites)
//   - [slog.LevelInfo]: dataset and animation lifecycle (generated, rendered, exported)
//   - [slog.LevelWarn]: non-fatal issues (sprite blit into a buffer without color channels)
//
// Example:
//
//	ggtraj.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by ggtraj.
// The render package calls this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
