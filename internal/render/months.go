package render

import "agenda/internal/database"

// AvailableMonths returns the non-archived month names of the first
// non-archived year equal to currentYear, in document order. The result is
// never nil.
func AvailableMonths(doc *database.Document, currentYear int) []string {
	months := []string{}
	if doc == nil {
		return months
	}
	for _, year := range doc.Years {
		if year.Year != currentYear || year.Archived {
			continue
		}
		for _, month := range year.Months {
			if !month.Archived {
				months = append(months, month.Name)
			}
		}
		return months
	}
	return months
}
