package lgl

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

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for lgl and its sub-packages.
// By default lgl produces no log output. Pass nil to restore silence.
//
// Log levels used by lgl:
//   - [slog.LevelDebug]: rejected calls on invalid surfaces, degenerate input
//   - [slog.LevelInfo]: window lifecycle, file reloads
//   - [slog.LevelWarn]: allocation failures, dropped watcher events
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The text, imageio and window packages
// log through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
