package calendar

import "agenda/internal/database"

// ArchiveMonth flags the month (exact name match) of year as archived.
func ArchiveMonth(doc *database.Document, year int, month string) bool {
	return setMonthArchived(doc, year, month, true)
}

// UnarchiveMonth clears the archived flag of the month.
func UnarchiveMonth(doc *database.Document, year int, month string) bool {
	return setMonthArchived(doc, year, month, false)
}

// ArchiveYear flags year as archived. Its months keep their own flags.
func ArchiveYear(doc *database.Document, year int) bool {
	return setYearArchived(doc, year, true)
}

// UnarchiveYear clears the archived flag of year.
func UnarchiveYear(doc *database.Document, year int) bool {
	return setYearArchived(doc, year, false)
}

func setMonthArchived(doc *database.Document, year int, month string, archived bool) bool {
	y := doc.FindYear(year)
	if y == nil {
		return false
	}
	m := y.FindMonth(month)
	if m == nil || m.Archived == archived {
		return false
	}
	m.Archived = archived
	return true
}

func setYearArchived(doc *database.Document, year int, archived bool) bool {
	y := doc.FindYear(year)
	if y == nil || y.Archived == archived {
		return false
	}
	y.Archived = archived
	return true
}
