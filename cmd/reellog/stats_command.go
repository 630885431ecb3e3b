package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reellog/internal/library"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show movie counts and total runtime per list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLibrary(cmd, func(lib *library.Library) error {
				stats := make([]listStatsJSON, 0, 2)
				for _, list := range library.Lists() {
					c, err := lib.Catalog(list)
					if err != nil {
						return err
					}
					stats = append(stats, listStatsJSON{
						List:         list.Slug(),
						Movies:       c.Len(),
						TotalMinutes: c.TotalMinutes(),
					})
				}
				if jsonOutput {
					return writeJSON(cmd, stats)
				}

				rows := make([][]string, 0, len(stats))
				var movies, minutes int
				for i, s := range stats {
					rows = append(rows, []string{
						library.Lists()[i].String(),
						strconv.Itoa(s.Movies),
						strconv.Itoa(s.TotalMinutes),
					})
					movies += s.Movies
					minutes += s.TotalMinutes
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"List", "Movies", "Minutes"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight},
					[]string{"Total", strconv.Itoa(movies), strconv.Itoa(minutes)},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
