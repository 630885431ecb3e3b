package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeDisplay()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("REELLOG_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Paths.WatchedFile = strings.TrimSpace(c.Paths.WatchedFile)
	if c.Paths.WatchedFile == "" {
		c.Paths.WatchedFile = defaultWatchedFile
	}
	c.Paths.ToWatchFile = strings.TrimSpace(c.Paths.ToWatchFile)
	if c.Paths.ToWatchFile == "" {
		c.Paths.ToWatchFile = defaultToWatchFile
	}
	if strings.HasPrefix(c.Paths.WatchedFile, "~") {
		if c.Paths.WatchedFile, err = expandPath(c.Paths.WatchedFile); err != nil {
			return fmt.Errorf("paths.watched_file: %w", err)
		}
	}
	if strings.HasPrefix(c.Paths.ToWatchFile, "~") {
		if c.Paths.ToWatchFile, err = expandPath(c.Paths.ToWatchFile); err != nil {
			return fmt.Errorf("paths.to_watch_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultColorMode
	}
}
