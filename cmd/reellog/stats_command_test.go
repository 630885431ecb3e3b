package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reellog/internal/testsupport"
)

func TestStats(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataFiles(
		[]string{"Dune|Sci-fi epic|155"},
		[]string{"Alien|Space horror|117", "Heat|Crime drama|170"},
	))

	out, _, err := runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "Watched")
	requireContains(t, out, "To Watch")
	requireContains(t, out, "287")
	requireContains(t, out, "442")

	out, _, err = runCLI(t, []string{"stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stats --json: %v", err)
	}
	var got []listStatsJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	want := []listStatsJSON{
		{List: "watched", Movies: 1, TotalMinutes: 155},
		{List: "towatch", Movies: 2, TotalMinutes: 287},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}
