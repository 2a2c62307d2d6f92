package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"agenda/internal/render"
)

func newMonthsCommand(ctx *commandContext) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Show the non-archived months of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}
			months := render.AvailableMonths(doc, year)

			if ctx.jsonOutput() {
				return writeJSON(cmd, months)
			}
			out := cmd.OutOrStdout()
			if len(months) == 0 {
				fmt.Fprintf(out, "No available months for %d\n", year)
				return nil
			}
			for _, m := range months {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year to inspect (default: current year)")
	return cmd
}
