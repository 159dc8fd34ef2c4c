package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type conditionalSourceHandler struct {
	next   slog.Handler
	levels map[slog.Level]bool
}

// NewConditionalSourceHandler attaches the caller's source location to records
// whose level is listed. The wrapped handler must have AddSource disabled.
func NewConditionalSourceHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]bool, len(levels))
	for _, lvl := range levels {
		set[lvl] = true
	}
	return &conditionalSourceHandler{next: next, levels: set}
}

func (h *conditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *conditionalSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *conditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *conditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &conditionalSourceHandler{next: h.next.WithGroup(name), levels: h.levels}
}
