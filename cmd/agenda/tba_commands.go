package main

import (
	"github.com/spf13/cobra"

	"agenda/internal/events"
)

func newTBACommand(ctx *commandContext) *cobra.Command {
	tbaCmd := &cobra.Command{
		Use:   "tba",
		Short: "Manage events whose date is still to be announced",
	}
	tbaCmd.AddCommand(newTBAAddCommand(ctx))
	tbaCmd.AddCommand(newTBARemoveCommand(ctx))
	return tbaCmd
}

func newTBAAddCommand(ctx *commandContext) *cobra.Command {
	input := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a to-be-announced event unless it is already listed",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := input.entry(ctx, events.MonthTBA)
			if err != nil {
				return err
			}
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			changed, err := svc.AddTBA(cmd.Context(), entry.TBA())
			if err != nil {
				return err
			}
			return reportEntry(cmd, ctx, "add", changed, entry)
		},
	}
	input.bind(cmd, false)
	return cmd
}

func newTBARemoveCommand(ctx *commandContext) *cobra.Command {
	input := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a to-be-announced event",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := input.entry(ctx, events.MonthTBA)
			if err != nil {
				return err
			}
			svc, err := ctx.calendarService()
			if err != nil {
				return err
			}
			changed, err := svc.RemoveTBA(cmd.Context(), entry.TBA())
			if err != nil {
				return err
			}
			return reportEntry(cmd, ctx, "remove", changed, entry)
		},
	}
	input.bind(cmd, false)
	return cmd
}
