package main

import (
	"github.com/spf13/cobra"

	"agenda/internal/events"
)

// eventFlags mirrors events.Fields; a non-blank flag overrides the
// environment value of the same field.
type eventFlags struct {
	fields events.Fields
}

func (f *eventFlags) bind(cmd *cobra.Command, withDate bool) {
	flags := cmd.Flags()
	if withDate {
		flags.StringVar(&f.fields.Year, "year", "", "Event year (event_year)")
		flags.StringVar(&f.fields.Month, "month", "", "Month name or \"tba\" (event_month)")
		flags.StringVar(&f.fields.Days, "days", "", "Comma-separated zero-padded days (event_day)")
	}
	flags.StringVar(&f.fields.Name, "name", "", "Event name (event_name)")
	flags.StringVar(&f.fields.URL, "url", "", "Event URL (event_url)")
	flags.StringVar(&f.fields.City, "city", "", "City (event_city)")
	flags.StringVar(&f.fields.State, "state", "", "State abbreviation (event_state)")
	flags.StringVar(&f.fields.Type, "type", "", "Event type, e.g. presencial or online (event_type)")
}

// entry merges environment and flag input and normalizes it. forceMonth,
// when set, replaces the month field and discards the year.
func (f *eventFlags) entry(ctx *commandContext, forceMonth string) (events.Entry, error) {
	lookup, err := ctx.envLookup()
	if err != nil {
		return events.Entry{}, err
	}
	fields := events.FieldsFromEnv(lookup).Merge(f.fields)
	if forceMonth != "" {
		fields.Month = forceMonth
		fields.Year = ""
	}
	return events.Normalize(fields)
}
