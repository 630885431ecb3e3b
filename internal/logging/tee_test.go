package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTeeHandlerCollapses(t *testing.T) {
	if _, ok := newTeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when no branches are given")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if newTeeHandler(nil, inner) != inner {
		t.Fatal("expected single branch to be returned unwrapped")
	}
}

func TestTeeHandlerRoutesByLevel(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	debugBranch := slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	warnBranch := slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn})

	logger := slog.New(newTeeHandler(debugBranch, warnBranch)).With("list", "Watched")
	logger.Debug("loaded")
	logger.Warn("save failed")

	if !strings.Contains(debugBuf.String(), "loaded") || !strings.Contains(debugBuf.String(), "save failed") {
		t.Fatalf("debug branch missing records: %q", debugBuf.String())
	}
	if strings.Contains(warnBuf.String(), "loaded") {
		t.Fatalf("warn branch received debug record: %q", warnBuf.String())
	}
	if !strings.Contains(warnBuf.String(), "list=Watched") {
		t.Fatalf("warn branch missing attrs: %q", warnBuf.String())
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("tee should be enabled when any branch is")
	}
}
