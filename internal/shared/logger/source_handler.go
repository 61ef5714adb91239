package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceLevelHandler struct {
	next   slog.Handler
	levels map[slog.Level]bool
}

// NewSourceLevelHandler attaches the caller's source location to records whose
// level is listed. The wrapped handler must not add source itself.
func NewSourceLevelHandler(next slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &sourceLevelHandler{next: next, levels: m}
}

func (h *sourceLevelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *sourceLevelHandler) Handle(ctx context.Context, r slog.Record) error {
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

func (h *sourceLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceLevelHandler{next: h.next.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceLevelHandler{next: h.next.WithGroup(name), levels: h.levels}
}
