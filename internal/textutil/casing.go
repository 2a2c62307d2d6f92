package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. Apostrophes start a new word ("d'oeste" becomes "D'Oeste").
// Surrounding whitespace is removed.
func TitleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	// cases.Caser is stateful, so a fresh one per call.
	caser := cases.Title(language.BrazilianPortuguese)
	var b strings.Builder
	start := 0
	for i, r := range value {
		if r != '\'' && r != '\u2019' {
			continue
		}
		b.WriteString(caser.String(value[start:i]))
		b.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	b.WriteString(caser.String(value[start:]))
	return b.String()
}

// Anchor converts a heading into the fragment GitHub assigns to it: lower
// case, spaces become hyphens, punctuation other than '-' and '_' is dropped.
func Anchor(heading string) string {
	heading = strings.ToLower(strings.TrimSpace(heading))
	var b strings.Builder
	for _, r := range heading {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case isWordRune(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
