package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Flag months or years as archived without deleting them",
	}
	archiveCmd.AddCommand(newArchiveMonthCommand(ctx))
	archiveCmd.AddCommand(newArchiveYearCommand(ctx))
	return archiveCmd
}

func newArchiveMonthCommand(ctx *commandContext) *cobra.Command {
	var year int
	var month string
	var undo bool

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Archive one month of a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			name := strings.TrimSpace(month)
			apply := svc.ArchiveMonth
			if undo {
				apply = svc.UnarchiveMonth
			}
			changed, err := apply(cmd.Context(), year, name)
			if err != nil {
				return err
			}
			return reportArchive(cmd, ctx, "month", undo, changed, year, name)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year holding the month")
	cmd.Flags().StringVar(&month, "month", "", "Month name exactly as stored")
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the archived flag instead")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func newArchiveYearCommand(ctx *commandContext) *cobra.Command {
	var year int
	var undo bool

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Archive a whole year",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			apply := svc.ArchiveYear
			if undo {
				apply = svc.UnarchiveYear
			}
			changed, err := apply(cmd.Context(), year)
			if err != nil {
				return err
			}
			return reportArchive(cmd, ctx, "year", undo, changed, year, "")
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Year to archive")
	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the archived flag instead")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func reportArchive(cmd *cobra.Command, ctx *commandContext, target string, undo, changed bool, year int, month string) error {
	verb := "archive"
	if undo {
		verb = "unarchive"
	}
	if ctx.jsonOutput() {
		cfg, _ := ctx.ensureConfig()
		return writeJSON(cmd, mutationResult{
			Operation: verb + " " + target,
			Changed:   changed,
			Database:  cfg.Paths.Database,
			Year:      year,
			Month:     month,
		})
	}

	label := fmt.Sprintf("%d", year)
	if month != "" {
		label = fmt.Sprintf("%s %d", month, year)
	}
	out := cmd.OutOrStdout()
	if !changed {
		fmt.Fprintf(out, "Nothing to %s for %s (not found or already %sd); database unchanged\n", verb, label, verb)
		return nil
	}
	fmt.Fprintf(out, "%s %s\n", pastTense(verb), label)
	return nil
}

func pastTense(verb string) string {
	if verb == "unarchive" {
		return "Unarchived"
	}
	return "Archived"
}
