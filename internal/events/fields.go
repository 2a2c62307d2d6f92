package events

import "strings"

// Environment keys read by FieldsFromEnv.
const (
	EnvYear  = "event_year"
	EnvMonth = "event_month"
	EnvName  = "event_name"
	EnvDays  = "event_day"
	EnvURL   = "event_url"
	EnvCity  = "event_city"
	EnvState = "event_state"
	EnvType  = "event_type"
)

// MonthTBA marks an entry whose date has not been announced.
const MonthTBA = "tba"

// Fields is the raw, unnormalized input for one event.
type Fields struct {
	Year  string
	Month string
	Name  string
	Days  string
	URL   string
	City  string
	State string
	Type  string
}

// FieldsFromEnv collects the event_* keys through lookup, which is usually
// os.LookupEnv or a map read from an env file.
func FieldsFromEnv(lookup func(string) (string, bool)) Fields {
	get := func(key string) string {
		if lookup == nil {
			return ""
		}
		value, _ := lookup(key)
		return value
	}
	return Fields{
		Year:  get(EnvYear),
		Month: get(EnvMonth),
		Name:  get(EnvName),
		Days:  get(EnvDays),
		URL:   get(EnvURL),
		City:  get(EnvCity),
		State: get(EnvState),
		Type:  get(EnvType),
	}
}

// Merge returns f with every non-blank field of override applied on top.
func (f Fields) Merge(override Fields) Fields {
	pick := func(base, over string) string {
		if strings.TrimSpace(over) != "" {
			return over
		}
		return base
	}
	return Fields{
		Year:  pick(f.Year, override.Year),
		Month: pick(f.Month, override.Month),
		Name:  pick(f.Name, override.Name),
		Days:  pick(f.Days, override.Days),
		URL:   pick(f.URL, override.URL),
		City:  pick(f.City, override.City),
		State: pick(f.State, override.State),
		Type:  pick(f.Type, override.Type),
	}
}
