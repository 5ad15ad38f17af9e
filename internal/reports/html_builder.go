package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/charts"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
)

// leftoverChartPattern matches placeholders whose chart failed to render.
var leftoverChartPattern = regexp.MustCompile(`\{\{CHART:[a-z0-9-]+\}\}`)

// HTMLBuilder turns dashboard markdown into the final HTML document:
// goldmark renders the body, chart snippets replace their placeholders,
// and the dashboard template wraps the result.
type HTMLBuilder struct {
	markdown       goldmark.Markdown
	templateLoader *TemplateLoader
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	return &HTMLBuilder{
		markdown:       newMarkdown(),
		templateLoader: NewTemplateLoader(),
	}
}

// newMarkdown configures the markdown renderer. GFM covers the metric
// tables; unsafe rendering lets chart snippets and provenance HTML pass
// through unescaped.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
	)
}

// TemplateData carries the fields the dashboard template renders
type TemplateData struct {
	Title       string
	Hub         string
	Date        string
	GeneratedAt string
	Version     string
	Content     template.HTML
}

// ConvertMarkdownToHTML renders dashboard markdown to an HTML fragment
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// SubstituteChartSnippets replaces {{CHART:<id>}} markers with the
// matching rendered snippets. Markers without a snippet are replaced by an
// unavailability note so a failed chart never leaks its placeholder.
func (h *HTMLBuilder) SubstituteChartSnippets(htmlContent string, snippets []charts.ChartSnippet) string {
	for _, snippet := range snippets {
		htmlContent = strings.ReplaceAll(htmlContent, chartPlaceholder(snippet.ID), snippet.HTML)
	}
	return leftoverChartPattern.ReplaceAllString(htmlContent, "<p>Chart unavailable</p>")
}

// BuildCompleteHTML wraps processed dashboard content in the full HTML
// document via the dashboard template.
func (h *HTMLBuilder) BuildCompleteHTML(processedContent string, data *analytics.DashboardData) (string, error) {
	generatedAt := data.GeneratedAt.UTC()

	doc, err := h.renderDocument(TemplateData{
		Title:       fmt.Sprintf("Hub Analytics Dashboard - %s", data.Hub),
		Hub:         data.Hub,
		Date:        generatedAt.Format("2006-01-02"),
		GeneratedAt: generatedAt.Format("2006-01-02 15:04:05 UTC"),
		Version:     config.GetVersion(),
		Content:     template.HTML(processedContent),
	})
	if err != nil {
		return "", err
	}

	logger.Debugf("Complete HTML built successfully (%d characters)", len(doc))
	return doc, nil
}

// renderDocument executes the dashboard template with the given data
func (h *HTMLBuilder) renderDocument(data TemplateData) (string, error) {
	source, err := h.templateLoader.LoadHTMLTemplate()
	if err != nil {
		return "", fmt.Errorf("template load failed: %w", err)
	}

	tmpl, err := template.New("dashboard").Parse(source)
	if err != nil {
		return "", fmt.Errorf("template parse failed: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
