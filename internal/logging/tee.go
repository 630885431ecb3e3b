package logging

import (
	"context"
	"log/slog"
)

// teeHandler sends each record to every branch that accepts its level.
type teeHandler struct {
	branches []slog.Handler
}

func newTeeHandler(branches ...slog.Handler) slog.Handler {
	kept := make([]slog.Handler, 0, len(branches))
	for _, h := range branches {
		if h != nil {
			kept = append(kept, h)
		}
	}
	switch len(kept) {
	case 0:
		return NoopHandler{}
	case 1:
		return kept[0]
	}
	return &teeHandler{branches: kept}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, branch := range h.branches {
		if branch.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, branch := range h.branches {
		if !branch.Enabled(ctx, record.Level) {
			continue
		}
		if err := branch.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(branch slog.Handler) slog.Handler { return branch.WithAttrs(attrs) })
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return h.each(func(branch slog.Handler) slog.Handler { return branch.WithGroup(name) })
}

func (h *teeHandler) each(fn func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(h.branches))
	for i, branch := range h.branches {
		next[i] = fn(branch)
	}
	return &teeHandler{branches: next}
}
