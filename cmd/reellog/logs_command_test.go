package main

import (
	"strings"
	"testing"

	"reellog/internal/testsupport"
)

func TestLogsShowsRecentLines(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"watched", "add", "Dune", "-d", "Sci-fi epic", "-m", "155"}, env.configPath); err != nil {
		t.Fatalf("watched add: %v", err)
	}

	out, _, err := runCLI(t, []string{"logs", "-n", "0"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "movie added")
	requireContains(t, out, "title=Dune")

	out, _, err = runCLI(t, []string{"logs", "--session", "no-such-session"}, env.configPath)
	if err != nil {
		t.Fatalf("logs --session: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Fatalf("expected no lines for unknown session, got %q", out)
	}
}

func TestLogsDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutLogFile())

	_, _, err := runCLI(t, []string{"logs"}, env.configPath)
	if err == nil {
		t.Fatalf("expected error when file logging is disabled")
	}
	requireContains(t, err.Error(), "file logging is disabled")
}
