package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Records are decoded field by field so hand-edited files keep their data:
// missing or null values take their zero value, "ano" may be a whole number
// in any JSON numeric form or a numeric string, non-boolean flags read as
// false, and a single "data" value becomes a one-day list. Only values that
// cannot be mapped at all (an object where text is expected, a list that is
// not a list) fail the decode.

func (d *Document) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "document")
	if err != nil {
		return err
	}
	years, err := decodeList[Year](fields["eventos"], "eventos")
	if err != nil {
		return err
	}
	tba, err := decodeList[TbaEvent](fields["tba"], "tba")
	if err != nil {
		return err
	}
	*d = Document{Years: years, TBA: tba}
	return nil
}

func (y *Year) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "ano")
	if err != nil {
		return err
	}
	year, err := parseYear(fields["ano"])
	if err != nil {
		return err
	}
	months, err := decodeList[Month](fields["meses"], "meses")
	if err != nil {
		return fmt.Errorf("ano %d: %w", year, err)
	}
	*y = Year{Year: year, Archived: flag(fields["arquivado"]), Months: months}
	return nil
}

func (m *Month) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "mes")
	if err != nil {
		return err
	}
	name, err := text(fields["mes"], "mes")
	if err != nil {
		return err
	}
	events, err := decodeList[Event](fields["eventos"], "eventos")
	if err != nil {
		return fmt.Errorf("mes %s: %w", name, err)
	}
	*m = Month{Name: name, Archived: flag(fields["arquivado"]), Events: events}
	return nil
}

func (e *Event) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "evento")
	if err != nil {
		return err
	}
	var out Event
	if err := decodeTexts(fields, map[string]*string{
		"nome":   &out.Name,
		"url":    &out.URL,
		"cidade": &out.City,
		"uf":     &out.State,
		"tipo":   &out.Type,
	}); err != nil {
		return err
	}
	if out.Days, err = decodeDays(fields["data"]); err != nil {
		return fmt.Errorf("evento %s: %w", out.Name, err)
	}
	*e = out
	return nil
}

func (e *TbaEvent) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "evento")
	if err != nil {
		return err
	}
	var out TbaEvent
	if err := decodeTexts(fields, map[string]*string{
		"nome":   &out.Name,
		"url":    &out.URL,
		"cidade": &out.City,
		"uf":     &out.State,
		"tipo":   &out.Type,
	}); err != nil {
		return err
	}
	*e = out
	return nil
}

func objectFields(data []byte, what string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode %s: expected an object", what)
	}
	return fields, nil
}

func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	out := []T{}
	if isNull(raw) {
		return out, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: expected a list", key)
	}
	for i, item := range items {
		if isNull(item) {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", key, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeTexts(fields map[string]json.RawMessage, dst map[string]*string) error {
	for key, ptr := range dst {
		value, err := text(fields[key], key)
		if err != nil {
			return err
		}
		*ptr = value
	}
	return nil
}

func decodeDays(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return []string{}, nil
	}
	if raw[0] != '[' {
		day, err := text(raw, "data")
		if err != nil {
			return nil, err
		}
		return []string{day}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	days := make([]string, 0, len(items))
	for _, item := range items {
		if isNull(item) {
			continue
		}
		day, err := text(item, "data")
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// text reads a string field. Numbers and booleans keep their literal form.
func text(raw json.RawMessage, key string) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("decode %s: expected text, got %s", key, kind(raw))
	}
	return string(raw), nil
}

func flag(raw json.RawMessage) bool {
	var b bool
	return json.Unmarshal(raw, &b) == nil && b
}

func parseYear(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return 0, nil
	}
	value := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &value); err != nil {
			return 0, fmt.Errorf("decode ano: %w", err)
		}
		value = strings.TrimSpace(value)
	}
	if year, err := strconv.Atoi(value); err == nil {
		return year, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("decode ano %s: not a whole number", raw)
	}
	return int(f), nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func kind(raw json.RawMessage) string {
	if raw[0] == '{' {
		return "an object"
	}
	return "a list"
}
