package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"econograph/internal/config"
)

// HTMLBuilder handles HTML generation with goldmark
type HTMLBuilder struct {
	goldmark goldmark.Markdown
	template *template.Template
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() (*HTMLBuilder, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // Allow raw HTML in markdown
		),
	)

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	return &HTMLBuilder{goldmark: md, template: tmpl}, nil
}

// TemplateData represents the data structure for the HTML template
type TemplateData struct {
	Title       string
	GeneratedAt string
	Version     string
	Content     template.HTML
	Chart       template.HTML
	DataTable   template.HTML
	Releases    template.HTML
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildCompleteHTML assembles the full report document: commentary,
// interactive chart, data table and release calendar.
func (h *HTMLBuilder) BuildCompleteHTML(title, markdownContent string, chartHTML, tableHTML, releasesHTML template.HTML) (string, error) {
	contentHTML, err := h.ConvertMarkdownToHTML(markdownContent)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Title:       title,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
		Version:     config.GetVersion(),
		Content:     template.HTML(contentHTML),
		Chart:       chartHTML,
		DataTable:   tableHTML,
		Releases:    releasesHTML,
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.String(), nil
}
