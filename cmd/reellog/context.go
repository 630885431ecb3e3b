package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reellog/internal/config"
	"reellog/internal/library"
	"reellog/internal/logging"
	"reellog/internal/storage"
)

type commandContext struct {
	configFlag   *string
	dataDirFlag  *string
	colorFlag    *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	// warned holds catalog paths whose failed save was already reported.
	warned map[string]bool
}

func newCommandContext(configFlag, dataDirFlag, colorFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		dataDirFlag:  dataDirFlag,
		colorFlag:    colorFlag,
		logLevelFlag: logLevelFlag,
		warned:       make(map[string]bool),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlagOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlagOverrides(cfg *config.Config) error {
	if dir := flagValue(c.dataDirFlag); dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("resolve --data-dir: %w", err)
		}
		cfg.Paths.DataDir = expanded
	}
	if mode := flagValue(c.colorFlag); mode != "" {
		cfg.Display.Color = strings.ToLower(mode)
	}
	if level := flagValue(c.logLevelFlag); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// withLibrary opens the session, runs fn, and always closes the session so
// both lists are saved once more before the lock is released.
func (c *commandContext) withLibrary(cmd *cobra.Command, fn func(*library.Library) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	lib, err := library.Open(library.PathsFromConfig(cfg), logger)
	if err != nil {
		if errors.Is(err, library.ErrLocked) {
			return fmt.Errorf("%w; close the other reellog session and retry", err)
		}
		return err
	}
	runErr := fn(lib)
	if err := c.unreported(lib.Close()); err != nil {
		warnf(cmd, "%v", err)
	}
	return runErr
}

// colorize reports whether output to w should carry ANSI colors.
func (c *commandContext) colorize(w io.Writer) bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return false
	}
	switch cfg.Display.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(w)
	}
}

// reportPersist downgrades write-through failures to a warning: the change
// stands in memory and is retried when the session closes.
func (c *commandContext) reportPersist(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrPersist) {
		return err
	}
	warnf(cmd, "%v", err)
	c.markWarned(err)
	return nil
}

func (c *commandContext) markWarned(err error) {
	switch e := err.(type) {
	case *storage.PersistError:
		c.warned[e.Path] = true
	case interface{ Unwrap() []error }:
		for _, child := range e.Unwrap() {
			c.markWarned(child)
		}
	case interface{ Unwrap() error }:
		c.markWarned(e.Unwrap())
	}
}

// unreported strips failed saves of paths already warned about, so a retry
// at close that fails the same way stays quiet.
func (c *commandContext) unreported(err error) error {
	kept, _ := c.dropWarned(err)
	return kept
}

func (c *commandContext) dropWarned(err error) (error, bool) {
	if err == nil {
		return nil, false
	}
	if perr, ok := err.(*storage.PersistError); ok {
		if c.warned[perr.Path] {
			return nil, true
		}
		return err, false
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var kept []error
		changed := false
		for _, child := range u.Unwrap() {
			k, dropped := c.dropWarned(child)
			changed = changed || dropped
			if k != nil {
				kept = append(kept, k)
			}
		}
		if !changed {
			return err, false
		}
		return errors.Join(kept...), true
	case interface{ Unwrap() error }:
		if k, dropped := c.dropWarned(u.Unwrap()); dropped && k == nil {
			return nil, true
		}
	}
	return err, false
}

func warnf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
