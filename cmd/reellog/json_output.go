package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"reellog/internal/movie"
)

type searchJSON struct {
	Found  bool          `json:"found"`
	List   string        `json:"list,omitempty"`
	Record *movie.Record `json:"record,omitempty"`
}

type listStatsJSON struct {
	List         string `json:"list"`
	Movies       int    `json:"movies"`
	TotalMinutes int    `json:"total_minutes"`
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
