package config

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckDataDirAccess verifies the data directory can be listed and written.
// Call after EnsureDirectories.
func (c *Config) CheckDataDirAccess() error {
	if err := unix.Access(c.Paths.DataDir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("data directory %s is not writable: %w", c.Paths.DataDir, err)
	}
	return nil
}
