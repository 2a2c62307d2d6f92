package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// mutationResult is the --json payload of every mutating command.
type mutationResult struct {
	Operation string `json:"operation"`
	Changed   bool   `json:"changed"`
	Database  string `json:"database"`
	Year      int    `json:"ano,omitempty"`
	Month     string `json:"mes,omitempty"`
	Name      string `json:"nome,omitempty"`
}
