package events

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"agenda/internal/database"
	"agenda/internal/textutil"
)

// ErrRequired is wrapped by FieldError when a mandatory field is blank.
var ErrRequired = errors.New("value is required")

// FieldError reports an input field that could not be normalized.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Entry is a normalized event addressed by year and month.
type Entry struct {
	Year  int
	Month string
	Event database.Event
}

// IsTBA reports whether the entry belongs in the to-be-announced list.
func (e Entry) IsTBA() bool {
	return e.Month == MonthTBA
}

// TBA returns the event without its day list.
func (e Entry) TBA() database.TbaEvent {
	return database.TbaEvent{
		Name:  e.Event.Name,
		URL:   e.Event.URL,
		City:  e.Event.City,
		State: e.Event.State,
		Type:  e.Event.Type,
	}
}

// Normalize canonicalizes f. It fails with a *FieldError when the year is not
// an integer (an empty year is accepted for TBA entries) and also when the
// month or name is blank.
func Normalize(f Fields) (Entry, error) {
	month := strings.ToLower(strings.TrimSpace(f.Month))
	if month == "" {
		return Entry{}, &FieldError{Field: EnvMonth, Value: f.Month, Err: ErrRequired}
	}

	year, err := parseYear(f.Year, month == MonthTBA)
	if err != nil {
		return Entry{}, err
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Entry{}, &FieldError{Field: EnvName, Value: f.Name, Err: ErrRequired}
	}

	return Entry{
		Year:  year,
		Month: month,
		Event: database.Event{
			Name:  name,
			Days:  SplitDays(f.Days),
			URL:   strings.TrimSpace(f.URL),
			City:  textutil.TitleCase(f.City),
			State: strings.ToUpper(strings.TrimSpace(f.State)),
			Type:  strings.ToLower(strings.TrimSpace(f.Type)),
		},
	}, nil
}

func parseYear(raw string, optional bool) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if optional {
			return 0, nil
		}
		return 0, &FieldError{Field: EnvYear, Value: raw, Err: ErrRequired}
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &FieldError{Field: EnvYear, Value: raw, Err: err}
	}
	return year, nil
}

// SplitDays splits a comma-separated day list, trims each token, drops empty
// tokens and sorts the rest as strings.
func SplitDays(raw string) []string {
	days := []string{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		days = append(days, token)
	}
	slices.Sort(days)
	return days
}
