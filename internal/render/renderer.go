package render

import (
	_ "embed"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"text/template"
	"time"

	"agenda/internal/database"
	"agenda/internal/textutil"
)

// TemplateName is the file looked up inside a template directory.
const TemplateName = "events.md.tmpl"

//go:embed templates/events.md.tmpl
var defaultTemplate string

// PageData is the value templates execute against.
type PageData struct {
	Data        *database.Document
	LinkMonths  []string
	Year        int
	GeneratedAt time.Time
}

// Renderer executes the page template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses events.md.tmpl from templateDir, or the embedded
// template when templateDir is empty.
func NewRenderer(templateDir string) (*Renderer, error) {
	tmpl := template.New(TemplateName).Funcs(funcMap())
	var err error
	if templateDir == "" {
		tmpl, err = tmpl.Parse(defaultTemplate)
	} else {
		tmpl, err = tmpl.ParseFiles(filepath.Join(templateDir, TemplateName))
	}
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render builds PageData for now and executes the template into w.
func (r *Renderer) Render(w io.Writer, doc *database.Document, now time.Time) error {
	return r.Execute(w, NewPageData(doc, now, 0))
}

// Execute runs the template with data.
func (r *Renderer) Execute(w io.Writer, data PageData) error {
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// NewPageData prepares template input. A zero year means now's year.
func NewPageData(doc *database.Document, now time.Time, year int) PageData {
	if doc == nil {
		doc = database.New()
	}
	if year == 0 {
		year = now.Year()
	}
	return PageData{
		Data:        doc,
		LinkMonths:  AvailableMonths(doc, year),
		Year:        year,
		GeneratedAt: now,
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDateList": FormatDateList,
		"title":          textutil.TitleCase,
		"anchor":         textutil.Anchor,
		"contains":       slices.Contains[[]string, string],
	}
}
