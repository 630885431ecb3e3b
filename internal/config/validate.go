package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateDisplay()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.WatchedFile == "" {
		return errors.New("paths.watched_file must be set")
	}
	if c.Paths.ToWatchFile == "" {
		return errors.New("paths.to_watch_file must be set")
	}
	if c.WatchedPath() == c.ToWatchPath() {
		return fmt.Errorf("paths.watched_file and paths.to_watch_file must differ (both resolve to %s)", c.WatchedPath())
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("display.color must be auto, always, or never; got %q", c.Display.Color)
	}
}
