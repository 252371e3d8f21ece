package logger

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// ConditionalSourceHandler decorates an slog.Handler and appends the
// source location attribute only for the configured levels.
type ConditionalSourceHandler struct {
	handler      slog.Handler
	sourceLevels map[slog.Level]bool
}

func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) *ConditionalSourceHandler {
	sourceLevels := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		sourceLevels[level] = true
	}
	return &ConditionalSourceHandler{
		handler:      handler,
		sourceLevels: sourceLevels,
	}
}

func (h *ConditionalSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ConditionalSourceHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.sourceLevels[record.Level] && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			record.AddAttrs(slog.String("source",
				fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)))
		}
	}
	return h.handler.Handle(ctx, record)
}

func (h *ConditionalSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConditionalSourceHandler{
		handler:      h.handler.WithAttrs(attrs),
		sourceLevels: h.sourceLevels,
	}
}

func (h *ConditionalSourceHandler) WithGroup(name string) slog.Handler {
	return &ConditionalSourceHandler{
		handler:      h.handler.WithGroup(name),
		sourceLevels: h.sourceLevels,
	}
}
