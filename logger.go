package ggthumb

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggthumb/text"
)

// nopHandler discards every record. Enabled reports false, so callers
// never format a message.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with renders on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggthumb and its text package.
// By default, ggthumb produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by ggthumb:
//   - [slog.LevelDebug]: per-layer timing, font resolution, cache hits
//   - [slog.LevelInfo]: web font downloads
//   - [slog.LevelWarn]: weight fallback, unreadable font files skipped during scans
//
// Example:
//
//	ggthumb.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger used by ggthumb.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
