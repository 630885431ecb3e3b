package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reellog/internal/logs"
)

const followWait = 2 * time.Second

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var session string
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent reellog log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogPath()
			if path == "" {
				return errors.New("file logging is disabled (paths.log_dir is empty)")
			}

			out := cmd.OutOrStdout()
			page, err := logs.Read(cmd.Context(), path, logs.Query{Offset: -1, Limit: lines, Session: session})
			if err != nil {
				return err
			}
			for _, line := range page.Lines {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}

			offset := page.Offset
			for {
				page, err := logs.Read(cmd.Context(), path, logs.Query{Offset: offset, Session: session, Wait: followWait})
				if errors.Is(err, context.Canceled) {
					return nil
				}
				if err != nil {
					return err
				}
				for _, line := range page.Lines {
					fmt.Fprintln(out, line)
				}
				offset = page.Offset
			}
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of trailing lines to show (0 for all)")
	cmd.Flags().StringVar(&session, "session", "", "Only show lines from this session ID")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	return cmd
}
