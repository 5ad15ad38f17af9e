package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/charts"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/validation"
)

// FileGenerator handles generation of all dashboard report files
type FileGenerator struct {
	chartGenerator *charts.ChartGenerator
	htmlBuilder    *HTMLBuilder
	explorer       *ExplorerBuilder
}

// GeneratedFiles contains all files generated for a dashboard report
type GeneratedFiles struct {
	HTMLContent string
	ChartFiles  []string          // Preview PNGs already written to the staging dir
	JSONFiles   map[string][]byte
	AssetFiles  map[string][]byte // Explorer pages, markdown source
	FolderPath  string            // Storage folder path for consistency
}

// NewFileGenerator creates a new file generator. Chart PNGs are written
// directly into stagingDir.
func NewFileGenerator(stagingDir string) *FileGenerator {
	return &FileGenerator{
		chartGenerator: charts.NewChartGenerator(stagingDir),
		htmlBuilder:    NewHTMLBuilder(),
		explorer:       NewExplorerBuilder(),
	}
}

// GenerateAllFiles creates all report files (HTML, charts, JSON, explorer pages).
// Auxiliary files degrade to warnings; only the dashboard HTML is fatal.
func (fg *FileGenerator) GenerateAllFiles(ctx context.Context, data *analytics.DashboardData, validationResults map[string]*validation.FileReport) (*GeneratedFiles, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no dashboard data to generate files from")
	}

	files := &GeneratedFiles{
		JSONFiles:  make(map[string][]byte),
		AssetFiles: make(map[string][]byte),
	}

	// Same folder naming as the storage layer so links resolve.
	files.FolderPath = storage.ReportFolder(data.GeneratedAt)

	markdown := BuildAnalyticsSummary(data)

	// 1. Dashboard data JSON
	if err := fg.generateDashboardJSON(data, files); err != nil {
		logger.Warnf("Failed to generate dashboard data JSON: %v", err)
	}

	// 2. Validation report JSON
	if err := fg.generateValidationJSON(validationResults, files); err != nil {
		logger.Warnf("Failed to generate validation report JSON: %v", err)
	}

	// 3. Markdown summary source
	files.AssetFiles["summary.md"] = []byte(markdown)

	// 4. Interactive explorer pages
	fg.generateExplorerPages(data, files)

	// 5. Preview chart PNGs
	chartFiles, err := fg.chartGenerator.GenerateCharts(data)
	if err != nil {
		logger.Warnf("Failed to generate preview charts: %v", err)
	}
	files.ChartFiles = chartFiles

	// 6. Dashboard HTML
	if err := fg.generateHTML(markdown, data, files); err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	return files, nil
}

// generateDashboardJSON serializes the full analytics payload
func (fg *FileGenerator) generateDashboardJSON(data *analytics.DashboardData, files *GeneratedFiles) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard data: %w", err)
	}
	files.JSONFiles["dashboard_data.json"] = payload
	logger.Debugf("Generated dashboard data JSON (%d bytes)", len(payload))
	return nil
}

// generateValidationJSON serializes the per-file validation reports
func (fg *FileGenerator) generateValidationJSON(results map[string]*validation.FileReport, files *GeneratedFiles) error {
	if len(results) == 0 {
		return nil
	}
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation results: %w", err)
	}
	files.JSONFiles["validation_report.json"] = payload
	logger.Debugf("Generated validation report JSON (%d bytes)", len(payload))
	return nil
}

// generateExplorerPages builds the standalone per-domain pages
func (fg *FileGenerator) generateExplorerPages(data *analytics.DashboardData, files *GeneratedFiles) {
	pages := []struct {
		name  string
		build func(*analytics.DashboardData) ([]byte, error)
	}{
		{"flights_explorer.html", fg.explorer.BuildFlightsExplorer},
		{"enrollment_explorer.html", fg.explorer.BuildEnrollmentExplorer},
		{"happiness_explorer.html", fg.explorer.BuildHappinessExplorer},
	}

	for _, page := range pages {
		content, err := page.build(data)
		if err != nil {
			logger.Warnf("Skipping explorer page %s: %v", page.name, err)
			continue
		}
		files.AssetFiles[page.name] = content
		logger.Debugf("Generated explorer page %s (%d bytes)", page.name, len(content))
	}
}

// generateHTML runs the markdown-to-dashboard pipeline
func (fg *FileGenerator) generateHTML(markdown string, data *analytics.DashboardData, files *GeneratedFiles) error {
	htmlContent, err := fg.htmlBuilder.ConvertMarkdownToHTML(markdown)
	if err != nil {
		return err
	}

	snippets, err := fg.chartGenerator.GenerateSnippets(data)
	if err != nil {
		return fmt.Errorf("failed to generate chart snippets: %w", err)
	}
	htmlContent = fg.htmlBuilder.SubstituteChartSnippets(htmlContent, snippets)

	completeHTML, err := fg.htmlBuilder.BuildCompleteHTML(htmlContent, data)
	if err != nil {
		return err
	}

	files.HTMLContent = completeHTML
	logger.Debugf("Generated dashboard HTML (%d bytes)", len(completeHTML))
	return nil
}
