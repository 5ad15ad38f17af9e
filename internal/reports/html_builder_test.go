package reports

import (
	"strings"
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/charts"
)

func TestConvertMarkdownToHTML(t *testing.T) {
	builder := NewHTMLBuilder()

	tests := []struct {
		name     string
		markdown string
		expected string
	}{
		{
			name:     "heading",
			markdown: "# Dashboard",
			expected: "<h1",
		},
		{
			name:     "bold text",
			markdown: "**important**",
			expected: "<strong>important</strong>",
		},
		{
			name:     "gfm table",
			markdown: "| Metric | Value |\n|--------|-------|\n| Flights | 120 |",
			expected: "<table>",
		},
		{
			name:     "blockquote",
			markdown: "> provenance notice",
			expected: "<blockquote>",
		},
		{
			name:     "raw html passes through",
			markdown: "<div id=\"chart-test\"></div>",
			expected: "<div id=\"chart-test\"></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := builder.ConvertMarkdownToHTML(tt.markdown)
			if err != nil {
				t.Fatalf("ConvertMarkdownToHTML failed: %v", err)
			}
			if !strings.Contains(html, tt.expected) {
				t.Errorf("Expected HTML to contain %q, got: %s", tt.expected, html)
			}
		})
	}
}

func TestSubstituteChartSnippets(t *testing.T) {
	builder := NewHTMLBuilder()

	content := "<p>before</p>\n{{CHART:chart-route-volume}}\n<p>after</p>"
	snippets := []charts.ChartSnippet{
		{ID: "chart-route-volume", HTML: "<div id=\"chart-route-volume\"></div><script>var x=1;</script>"},
	}

	result := builder.SubstituteChartSnippets(content, snippets)

	if strings.Contains(result, "{{CHART:chart-route-volume}}") {
		t.Error("Expected placeholder to be replaced")
	}
	if !strings.Contains(result, "<div id=\"chart-route-volume\"></div>") {
		t.Error("Expected snippet HTML to be substituted in")
	}
	if !strings.Contains(result, "<p>before</p>") || !strings.Contains(result, "<p>after</p>") {
		t.Error("Expected surrounding content to be preserved")
	}
}

func TestSubstituteChartSnippetsLeftoverScrub(t *testing.T) {
	builder := NewHTMLBuilder()

	content := "<p>intro</p>\n{{CHART:chart-missing-snippet}}"
	result := builder.SubstituteChartSnippets(content, nil)

	if strings.Contains(result, "{{CHART:") {
		t.Errorf("Expected leftover placeholders to be scrubbed, got: %s", result)
	}
	if !strings.Contains(result, "<p>Chart unavailable</p>") {
		t.Error("Expected unavailable-chart fallback text")
	}
}

func TestSubstituteChartSnippetsMultiple(t *testing.T) {
	builder := NewHTMLBuilder()

	content := "{{CHART:chart-a}} {{CHART:chart-b}}"
	snippets := []charts.ChartSnippet{
		{ID: "chart-a", HTML: "<div>A</div>"},
		{ID: "chart-b", HTML: "<div>B</div>"},
	}

	result := builder.SubstituteChartSnippets(content, snippets)

	if result != "<div>A</div> <div>B</div>" {
		t.Errorf("Expected both snippets substituted, got: %s", result)
	}
}

func TestBuildCompleteHTML(t *testing.T) {
	builder := NewHTMLBuilder()
	data := testDashboardData(t)

	html, err := builder.BuildCompleteHTML("<p>dashboard body</p>", data)
	if err != nil {
		t.Fatalf("BuildCompleteHTML failed: %v", err)
	}

	expected := []string{
		"<!DOCTYPE html>",
		"Hub Analytics Dashboard - JFK",
		"Hub: JFK",
		"<p>dashboard body</p>",
		"flights_explorer.html",
		"enrollment_explorer.html",
		"happiness_explorer.html",
	}
	for _, want := range expected {
		if !strings.Contains(html, want) {
			t.Errorf("Expected complete HTML to contain %q", want)
		}
	}
}

func TestBuildCompleteHTMLEscapesNothingInContent(t *testing.T) {
	builder := NewHTMLBuilder()
	data := testDashboardData(t)

	content := "<script>var option={\"series\":[]};</script>"
	html, err := builder.BuildCompleteHTML(content, data)
	if err != nil {
		t.Fatalf("BuildCompleteHTML failed: %v", err)
	}

	if !strings.Contains(html, content) {
		t.Error("Expected chart scripts to pass through the template unescaped")
	}
}

func TestHTMLPipelineEndToEnd(t *testing.T) {
	builder := NewHTMLBuilder()
	data := testDashboardData(t)

	markdown := BuildAnalyticsSummary(data)
	htmlContent, err := builder.ConvertMarkdownToHTML(markdown)
	if err != nil {
		t.Fatalf("ConvertMarkdownToHTML failed: %v", err)
	}

	generator := charts.NewChartGenerator(t.TempDir())
	snippets, err := generator.GenerateSnippets(data)
	if err != nil {
		t.Fatalf("GenerateSnippets failed: %v", err)
	}

	htmlContent = builder.SubstituteChartSnippets(htmlContent, snippets)
	if strings.Contains(htmlContent, "{{CHART:") {
		t.Error("Expected all chart placeholders to be resolved")
	}

	complete, err := builder.BuildCompleteHTML(htmlContent, data)
	if err != nil {
		t.Fatalf("BuildCompleteHTML failed: %v", err)
	}
	if !strings.Contains(complete, "echarts.init") {
		t.Error("Expected rendered dashboard to contain chart init scripts")
	}
}
