package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agenda/internal/events"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	input := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event (month \"tba\" adds to the to-be-announced list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := input.entry(ctx, "")
			if err != nil {
				return err
			}
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			changed, err := svc.Add(cmd.Context(), entry)
			if err != nil {
				return err
			}
			return reportEntry(cmd, ctx, "add", changed, entry)
		},
	}
	input.bind(cmd, true)
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	input := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an event (month \"tba\" removes from the to-be-announced list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := input.entry(ctx, "")
			if err != nil {
				return err
			}
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			changed, err := svc.Remove(cmd.Context(), entry)
			if err != nil {
				return err
			}
			return reportEntry(cmd, ctx, "remove", changed, entry)
		},
	}
	input.bind(cmd, true)
	return cmd
}

func reportEntry(cmd *cobra.Command, ctx *commandContext, operation string, changed bool, entry events.Entry) error {
	cfg, _ := ctx.ensureConfig()
	if entry.IsTBA() {
		operation = "tba " + operation
	}
	if ctx.jsonOutput() {
		result := mutationResult{
			Operation: operation,
			Changed:   changed,
			Database:  cfg.Paths.Database,
			Year:      entry.Year,
			Month:     entry.Month,
			Name:      entry.Event.Name,
		}
		if entry.IsTBA() {
			result.Year = 0
		}
		return writeJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	where := fmt.Sprintf("%s %d", entry.Month, entry.Year)
	if entry.IsTBA() {
		where = "the to-be-announced list"
	}
	switch {
	case !changed && operation == "tba add":
		fmt.Fprintf(out, "Event %q is already in %s; database unchanged\n", entry.Event.Name, where)
	case !changed:
		fmt.Fprintf(out, "No matching event %q in %s; database unchanged\n", entry.Event.Name, where)
	case operation == "add" || operation == "tba add":
		fmt.Fprintf(out, "Added %q to %s\n", entry.Event.Name, where)
	default:
		fmt.Fprintf(out, "Removed %q from %s\n", entry.Event.Name, where)
	}
	return nil
}
