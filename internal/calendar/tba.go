package calendar

import (
	"slices"

	"agenda/internal/database"
)

// AddTBA appends event to the to-be-announced list unless an entry with the
// same identity is already there.
func AddTBA(doc *database.Document, event database.TbaEvent) bool {
	if slices.ContainsFunc(doc.TBA, event.Matches) {
		return false
	}
	doc.TBA = append(doc.TBA, event)
	return true
}

// RemoveTBA deletes every to-be-announced entry matching event's identity.
func RemoveTBA(doc *database.Document, event database.TbaEvent) bool {
	before := len(doc.TBA)
	doc.TBA = slices.DeleteFunc(doc.TBA, event.Matches)
	return len(doc.TBA) != before
}
