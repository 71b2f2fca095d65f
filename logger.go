package stage

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler is a slog.Handler that drops every record. Enabled returns
// false so callers skip attribute formatting when logging is off.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(discardHandler{})
	activeLogger.Store(l)
}

// SetLogger configures the logger used by stage. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - slog.LevelDebug: per-draw diagnostics (text raster refresh, canvas ops)
//   - slog.LevelWarn: non-fatal issues (texture sampling fallbacks, close errors)
//
// SetLogger stores the logger atomically and may be called from any
// goroutine.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	activeLogger.Store(l)
}

// Logger returns the logger currently used by stage.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
