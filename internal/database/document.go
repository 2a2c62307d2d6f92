package database

import "strings"

// Document is the root of the database file.
type Document struct {
	Years []Year     `json:"eventos"`
	TBA   []TbaEvent `json:"tba"`
}

// Year groups the months of one calendar year.
type Year struct {
	Year     int     `json:"ano"`
	Archived bool    `json:"arquivado"`
	Months   []Month `json:"meses"`
}

// Month groups the events of one month. Name is the lower-case month name
// (or "tba").
type Month struct {
	Name     string  `json:"mes"`
	Archived bool    `json:"arquivado"`
	Events   []Event `json:"eventos"`
}

// Event is a dated event. Days holds zero-padded day-of-month strings.
type Event struct {
	Name  string   `json:"nome"`
	Days  []string `json:"data"`
	URL   string   `json:"url"`
	City  string   `json:"cidade"`
	State string   `json:"uf"`
	Type  string   `json:"tipo"`
}

// TbaEvent is an event whose date is still to be announced.
type TbaEvent struct {
	Name  string `json:"nome"`
	URL   string `json:"url"`
	City  string `json:"cidade"`
	State string `json:"uf"`
	Type  string `json:"tipo"`
}

// New returns an empty document.
func New() *Document {
	return &Document{Years: []Year{}, TBA: []TbaEvent{}}
}

// Matches reports whether other has the same identity. URL is not part of
// the identity; name and city compare case-insensitively.
func (e Event) Matches(other Event) bool {
	return strings.EqualFold(e.Name, other.Name) &&
		strings.EqualFold(e.City, other.City) &&
		e.State == other.State &&
		e.Type == other.Type &&
		sameDays(e.Days, other.Days)
}

// Matches reports whether other has the same identity. URL is not part of
// the identity; name and city compare case-insensitively.
func (e TbaEvent) Matches(other TbaEvent) bool {
	return strings.EqualFold(e.Name, other.Name) &&
		strings.EqualFold(e.City, other.City) &&
		e.State == other.State &&
		e.Type == other.Type
}

func sameDays(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindYear returns the entry for year, or nil.
func (d *Document) FindYear(year int) *Year {
	for i := range d.Years {
		if d.Years[i].Year == year {
			return &d.Years[i]
		}
	}
	return nil
}

// FindMonth returns the month with exactly this name, or nil.
func (y *Year) FindMonth(name string) *Month {
	for i := range y.Months {
		if y.Months[i].Name == name {
			return &y.Months[i]
		}
	}
	return nil
}

// fillEmpty replaces nil lists with empty ones so the file never holds null.
func (d *Document) fillEmpty() {
	if d.Years == nil {
		d.Years = []Year{}
	}
	if d.TBA == nil {
		d.TBA = []TbaEvent{}
	}
	for i := range d.Years {
		year := &d.Years[i]
		if year.Months == nil {
			year.Months = []Month{}
		}
		for j := range year.Months {
			month := &year.Months[j]
			if month.Events == nil {
				month.Events = []Event{}
			}
			for k := range month.Events {
				if month.Events[k].Days == nil {
					month.Events[k].Days = []string{}
				}
			}
		}
	}
}
