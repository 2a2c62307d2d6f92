package calendar

import (
	"cmp"
	"slices"

	"agenda/internal/database"
	"agenda/internal/events"
)

// AddEvent inserts entry.Event under its year and month, creating both when
// missing. Years stay sorted by number and the month's events by day list,
// then by duration. It always reports a change.
func AddEvent(doc *database.Document, entry events.Entry) bool {
	if doc.FindYear(entry.Year) == nil {
		doc.Years = append(doc.Years, database.Year{Year: entry.Year, Months: []database.Month{}})
	}
	sortYears(doc.Years)
	year := doc.FindYear(entry.Year)

	month := year.FindMonth(entry.Month)
	if month == nil {
		year.Months = append(year.Months, database.Month{Name: entry.Month, Events: []database.Event{}})
		month = &year.Months[len(year.Months)-1]
	}

	event := entry.Event
	event.Days = slices.Clone(event.Days)
	if event.Days == nil {
		event.Days = []string{}
	}
	month.Events = append(month.Events, event)
	sortEvents(month.Events)
	return true
}

// RemoveEvent deletes every event in the entry's month matching its
// identity. A month left empty is dropped, then a year left without months.
func RemoveEvent(doc *database.Document, entry events.Entry) bool {
	yearIdx := slices.IndexFunc(doc.Years, func(y database.Year) bool { return y.Year == entry.Year })
	if yearIdx < 0 {
		return false
	}
	year := &doc.Years[yearIdx]

	monthIdx := slices.IndexFunc(year.Months, func(m database.Month) bool { return m.Name == entry.Month })
	if monthIdx < 0 {
		return false
	}
	month := &year.Months[monthIdx]

	before := len(month.Events)
	month.Events = slices.DeleteFunc(month.Events, entry.Event.Matches)
	if len(month.Events) == before {
		return false
	}

	if len(month.Events) == 0 {
		year.Months = slices.Delete(year.Months, monthIdx, monthIdx+1)
	}
	if len(year.Months) == 0 {
		doc.Years = slices.Delete(doc.Years, yearIdx, yearIdx+1)
	}
	return true
}

func sortYears(years []database.Year) {
	slices.SortStableFunc(years, func(a, b database.Year) int {
		return cmp.Compare(a.Year, b.Year)
	})
}

// sortEvents orders by day list compared element-wise as strings, then by
// number of days.
func sortEvents(list []database.Event) {
	slices.SortStableFunc(list, func(a, b database.Event) int {
		if c := slices.Compare(a.Days, b.Days); c != 0 {
			return c
		}
		return cmp.Compare(len(a.Days), len(b.Days))
	})
}
