package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reellog/internal/catalog"
	"reellog/internal/library"
	"reellog/internal/movie"
)

func newListCommand(ctx *commandContext, list library.List) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   list.Slug(),
		Short: fmt.Sprintf("Manage the %s list", list),
	}
	if list == library.ToWatch {
		listCmd.Aliases = []string{"to-watch", "watchlist"}
	}

	listCmd.AddCommand(newListAddCommand(ctx, list))
	listCmd.AddCommand(newListRemoveCommand(ctx, list))
	listCmd.AddCommand(newListShowCommand(ctx, list))

	return listCmd
}

func newListAddCommand(ctx *commandContext, list library.List) *cobra.Command {
	var title string
	var description string
	var duration string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: fmt.Sprintf("Add a movie to the %s list", list),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if strings.TrimSpace(title) != "" {
					return errors.New("title given both as argument and --title")
				}
				title = args[0]
			}
			rec, err := parseRecordInput(title, description, duration)
			if err != nil {
				return err
			}
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				err := lib.Add(list, rec.Title, rec.Description, rec.Duration)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, paint("Movie successfully added!", ansiGreen, ctx.colorize(out)))
				return ctx.reportPersist(cmd, err)
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title (1-99 characters)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description (1-255 characters)")
	cmd.Flags().StringVarP(&duration, "duration", "m", "", "Duration in minutes (1-600)")
	return cmd
}

// parseRecordInput normalizes and validates flag input the same way the
// interactive form does.
func parseRecordInput(title, description, duration string) (movie.Record, error) {
	minutes, err := movie.ParseDuration(duration)
	if err != nil {
		return movie.Record{}, err
	}
	rec := movie.Normalize(movie.New(title, description, minutes))
	if err := movie.Validate(rec); err != nil {
		return movie.Record{}, err
	}
	return rec, nil
}

func newListRemoveCommand(ctx *commandContext, list library.List) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <title>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove the first movie with this title from the %s list", list),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := movie.NormalizeText(args[0])
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				out := cmd.OutOrStdout()
				colorize := ctx.colorize(out)
				_, err := lib.Remove(list, title)
				if errors.Is(err, catalog.ErrNotFound) {
					fmt.Fprintln(out, paint("Movie not found!", ansiRed, colorize))
					return nil
				}
				fmt.Fprintln(out, paint("Movie successfully removed!", ansiGreen, colorize))
				return ctx.reportPersist(cmd, err)
			})
		},
	}
}

func newListShowCommand(ctx *commandContext, list library.List) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "display"},
		Short:   fmt.Sprintf("Show the %s list", list),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				records := lib.List(list)
				if jsonOutput {
					if records == nil {
						records = []movie.Record{}
					}
					return writeJSON(cmd, records)
				}
				out := cmd.OutOrStdout()
				colorize := ctx.colorize(out)
				for _, line := range renderSectionHeader(fmt.Sprintf("%s Movies", list), colorize) {
					fmt.Fprintln(out, line)
				}
				if len(records) == 0 {
					fmt.Fprintln(out, "No movies to display.")
					return nil
				}
				fmt.Fprintln(out, renderMovieTable(records))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
