package main

import (
	"github.com/spf13/cobra"

	"reellog/internal/library"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dataDirFlag string
	var colorFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &dataDirFlag, &colorFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "reellog",
		Short:         "Track the movies you have watched and the ones you want to watch",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(ctx, cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding the movie lists (overrides paths.data_dir)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always, or never")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log file level: debug, info, warn, or error (overrides logging.level)")

	for _, list := range library.Lists() {
		rootCmd.AddCommand(newListCommand(ctx, list))
	}
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newMenuCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
