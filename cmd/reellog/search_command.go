package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reellog/internal/library"
	"reellog/internal/movie"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Find a movie by exact title, Watched first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := movie.NormalizeText(args[0])
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				match, found := lib.Search(title)
				if jsonOutput {
					result := searchJSON{Found: found}
					if found {
						result.List = match.List.Slug()
						result.Record = &match.Record
					}
					return writeJSON(cmd, result)
				}

				out := cmd.OutOrStdout()
				colorize := ctx.colorize(out)
				if !found {
					fmt.Fprintln(out, paint("Movie not found in either list.", ansiRed, colorize))
					return nil
				}
				fmt.Fprintln(out, paint(fmt.Sprintf("Found in %s list:", match.List), listColor(match.List), colorize))
				fmt.Fprintf(out, "%sTitle:       %s\n", statusIndent, paint(match.Record.Title, ansiBold, colorize))
				fmt.Fprintf(out, "%sDescription: %s\n", statusIndent, match.Record.Description)
				fmt.Fprintf(out, "%sDuration:    %s\n", statusIndent, paint(match.Record.DurationLabel(), ansiYellow, colorize))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
