package render

import "strings"

// FormatDateList joins dates as "a, b e c". One element is returned as is,
// an empty list as "".
func FormatDateList(dates []string) string {
	switch len(dates) {
	case 0:
		return ""
	case 1:
		return dates[0]
	}
	last := len(dates) - 1
	return strings.Join(dates[:last], ", ") + " e " + dates[last]
}
