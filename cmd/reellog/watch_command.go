package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reellog/internal/catalog"
	"reellog/internal/library"
	"reellog/internal/movie"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var fromFlag string
	var toFlag string

	cmd := &cobra.Command{
		Use:   "watch <title>",
		Short: "Move a movie from To Watch to Watched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := library.ParseList(fromFlag)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := library.ParseList(toFlag)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			title := movie.NormalizeText(args[0])
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				out := cmd.OutOrStdout()
				colorize := ctx.colorize(out)
				rec, err := lib.Move(title, from, to)
				if errors.Is(err, catalog.ErrNotFound) {
					fmt.Fprintln(out, paint(fmt.Sprintf("Movie not found in %s list.", from), ansiRed, colorize))
					return nil
				}
				if rec.Title == "" {
					return err
				}
				fmt.Fprintln(out, paint(fmt.Sprintf("Moved %q to %s.", rec.Title, to), listColor(to), colorize))
				return ctx.reportPersist(cmd, err)
			})
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", library.ToWatch.Slug(), "List to take the movie from")
	cmd.Flags().StringVar(&toFlag, "to", library.Watched.Slug(), "List to append the movie to")
	return cmd
}
