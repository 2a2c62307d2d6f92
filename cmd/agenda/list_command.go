package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"agenda/internal/database"
	"agenda/internal/events"
	"agenda/internal/render"
)

type listRow struct {
	Year     int      `json:"ano,omitempty"`
	Month    string   `json:"mes"`
	Days     []string `json:"data,omitempty"`
	Name     string   `json:"nome"`
	City     string   `json:"cidade"`
	State    string   `json:"uf"`
	Type     string   `json:"tipo"`
	URL      string   `json:"url"`
	Archived bool     `json:"arquivado"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var year int
	var withTBA bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.store()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}
			rows := collectRows(doc, year, withTBA)

			if ctx.jsonOutput() {
				return writeJSON(cmd, rows)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No events found")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Ano", "Mês", "Dias", "Nome", "Local", "Tipo", "Arquivado"},
				tableRows(rows),
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Only list this year")
	cmd.Flags().BoolVar(&withTBA, "tba", true, "Include to-be-announced events")
	return cmd
}

func collectRows(doc *database.Document, year int, withTBA bool) []listRow {
	rows := []listRow{}
	for _, y := range doc.Years {
		if year != 0 && y.Year != year {
			continue
		}
		for _, m := range y.Months {
			for _, e := range m.Events {
				rows = append(rows, listRow{
					Year:     y.Year,
					Month:    m.Name,
					Days:     e.Days,
					Name:     e.Name,
					City:     e.City,
					State:    e.State,
					Type:     e.Type,
					URL:      e.URL,
					Archived: y.Archived || m.Archived,
				})
			}
		}
	}
	if withTBA {
		for _, e := range doc.TBA {
			rows = append(rows, listRow{
				Month: events.MonthTBA,
				Name:  e.Name,
				City:  e.City,
				State: e.State,
				Type:  e.Type,
				URL:   e.URL,
			})
		}
	}
	return rows
}

func tableRows(rows []listRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		yearLabel := "-"
		if r.Year != 0 {
			yearLabel = strconv.Itoa(r.Year)
		}
		out = append(out, []string{
			yearLabel,
			r.Month,
			render.FormatDateList(r.Days),
			r.Name,
			r.City + "/" + r.State,
			r.Type,
			yesNo(r.Archived),
		})
	}
	return out
}

func yesNo(value bool) string {
	if value {
		return "sim"
	}
	return "não"
}
