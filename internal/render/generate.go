package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"agenda/internal/database"
	"agenda/internal/fileutil"
	"agenda/internal/logging"
)

// Options controls one page generation.
type Options struct {
	DatabasePath   string
	TemplateDir    string
	OutputPath     string
	HTMLOutputPath string
	// Now stamps the page and selects the current year; zero means time.Now.
	Now time.Time
	// Year overrides the year used for the month links.
	Year int
}

// Result describes what Generate wrote.
type Result struct {
	OutputPath     string   `json:"output_path"`
	HTMLOutputPath string   `json:"html_output_path,omitempty"`
	LinkMonths     []string `json:"link_months"`
	Bytes          int      `json:"bytes"`
}

// Generate renders the database at opts.DatabasePath into opts.OutputPath and,
// when configured, an HTML copy.
func Generate(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "render")
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	doc, err := database.Read(opts.DatabasePath)
	if err != nil {
		return Result{}, err
	}
	renderer, err := NewRenderer(opts.TemplateDir)
	if err != nil {
		return Result{}, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	data := NewPageData(doc, now, opts.Year)

	var page bytes.Buffer
	if err := renderer.Execute(&page, data); err != nil {
		return Result{}, err
	}
	if err := fileutil.WriteFileAtomic(opts.OutputPath, page.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write page: %w", err)
	}
	result := Result{OutputPath: opts.OutputPath, LinkMonths: data.LinkMonths, Bytes: page.Len()}

	if opts.HTMLOutputPath != "" {
		if err := fileutil.WriteFileAtomic(opts.HTMLOutputPath, ToHTML(page.Bytes()), 0o644); err != nil {
			return Result{}, fmt.Errorf("write html page: %w", err)
		}
		result.HTMLOutputPath = opts.HTMLOutputPath
	}

	logger.Info("page generated",
		logging.String(logging.FieldEventType, "page_generated"),
		logging.String(logging.FieldPath, opts.OutputPath),
		logging.Int(logging.FieldYear, data.Year),
		logging.Int("link_months", len(data.LinkMonths)),
		logging.Bool("html", result.HTMLOutputPath != ""))
	return result, nil
}

// ToHTML converts rendered Markdown into a standalone HTML page.
func ToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage | html.HrefTargetBlank,
		Title: "Agenda de eventos",
	})
	return markdown.ToHTML(md, p, r)
}
