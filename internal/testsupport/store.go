package testsupport

import (
	"testing"

	"reellog/internal/config"
	"reellog/internal/library"
	"reellog/internal/logging"
)

// MustOpenLibrary opens a Library over cfg for tests and registers cleanup.
func MustOpenLibrary(t testing.TB, cfg *config.Config) *library.Library {
	t.Helper()

	lib, err := library.Open(library.PathsFromConfig(cfg), logging.NewNop())
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = lib.Close()
	})
	return lib
}
