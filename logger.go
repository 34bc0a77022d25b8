package haircolor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so log calls
// never format their arguments.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(discardHandler{})

// current is read by the worker goroutine while the CLI or an embedding
// app may replace it.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes log output of the pipeline, the chart loader and the
// capture worker to l. A nil l silences them again, which is also the
// state before the first call.
//
// Records by level:
//   - Debug: resize and lightness details, skipped chart rows, dropped results
//   - Info: a photo was set up
//   - Warn: empty hair region, render with missing inputs, failed requests
//
// For example, to see everything on stderr:
//
//	haircolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. Safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
