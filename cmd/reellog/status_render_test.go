package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"reellog/internal/library"
	"reellog/internal/movie"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Data directory", statusError, "/data", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Data directory:", "[ERROR] /data")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Data directory", statusOK, "/data", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestListColors(t *testing.T) {
	if got := paint("x", listColor(library.Watched), true); got != ansiGreen+"x"+ansiReset {
		t.Fatalf("watched color = %q", got)
	}
	if got := paint("x", listColor(library.ToWatch), true); got != ansiMagenta+"x"+ansiReset {
		t.Fatalf("to-watch color = %q", got)
	}
	if got := paint("x", ansiRed, false); got != "x" {
		t.Fatalf("paint without color = %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Watched Movies ", false)
	if len(lines) != 2 || lines[0] != "== Watched Movies ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines)
	}
}

func TestRenderMovieTable(t *testing.T) {
	out := renderMovieTable([]movie.Record{
		{Title: "Dune", Description: "Sci-fi epic", Duration: 155},
		{Title: "Alien", Description: "Space horror", Duration: 117},
	})
	for _, want := range []string{"Dune", "Sci-fi epic", "155 minutes", "Alien", "117 minutes"} {
		requireContains(t, out, want)
	}
	if strings.Index(out, "Dune") > strings.Index(out, "Alien") {
		t.Fatalf("rows must keep insertion order:\n%s", out)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
