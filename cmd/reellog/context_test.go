package main

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"reellog/internal/storage"
)

func TestUnreportedDropsOnlyWarnedSaves(t *testing.T) {
	ctx := newCommandContext(nil, nil, nil, nil)
	cmd := &cobra.Command{}
	cmd.SetErr(io.Discard)

	watched := &storage.PersistError{Path: "/data/watched_movies.txt", Err: errors.New("no such directory")}
	toWatch := &storage.PersistError{Path: "/data/to_watch_movies.txt", Err: errors.New("read-only file system")}
	if err := ctx.reportPersist(cmd, watched); err != nil {
		t.Fatalf("persist failure should be downgraded, got %v", err)
	}

	retry := errors.Join(fmt.Errorf("save Watched list: %w", watched), nil)
	if err := ctx.unreported(retry); err != nil {
		t.Fatalf("expected warned save to be dropped, got %v", err)
	}

	unlock := errors.New("release lock: bad descriptor")
	both := errors.Join(
		errors.Join(fmt.Errorf("save Watched list: %w", watched), fmt.Errorf("save To Watch list: %w", toWatch)),
		unlock,
	)
	err := ctx.unreported(both)
	if err == nil {
		t.Fatal("expected unreported failures to survive")
	}
	if !errors.Is(err, unlock) {
		t.Fatalf("expected lock error to survive, got %v", err)
	}
	var perr *storage.PersistError
	if !errors.As(err, &perr) || perr.Path != toWatch.Path {
		t.Fatalf("expected only the To Watch save to survive, got %v", err)
	}
}

func TestReportPersistPassesOtherErrors(t *testing.T) {
	ctx := newCommandContext(nil, nil, nil, nil)
	cmd := &cobra.Command{}
	cmd.SetErr(io.Discard)

	other := errors.New("lock lost")
	if err := ctx.reportPersist(cmd, other); !errors.Is(err, other) {
		t.Fatalf("expected non-persist error to pass through, got %v", err)
	}
}
