package main

import (
	"github.com/spf13/cobra"

	"reellog/internal/library"
	"reellog/internal/tui"
)

func newMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(ctx, cmd)
		},
	}
}

func runMenu(ctx *commandContext, cmd *cobra.Command) error {
	return ctx.withLibrary(cmd, func(lib *library.Library) error {
		out := cmd.OutOrStdout()
		return tui.Run(cmd.Context(), lib, tui.Options{
			Input:    cmd.InOrStdin(),
			Output:   out,
			Colorize: ctx.colorize(out),
		})
	})
}
