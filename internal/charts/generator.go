package charts

import (
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
)

// ChartGenerator handles creation of embeddable chart snippets and static
// chart images for dashboard reports.
type ChartGenerator struct {
	outputDir string
}

// NewChartGenerator creates a generator for dashboard charts
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
	}
}

// GenerateSnippets builds all embeddable ECharts and Leaflet snippets for the
// dashboard. Individual chart failures are logged and skipped so one bad
// dataset never sinks the whole report.
func (cg *ChartGenerator) GenerateSnippets(data *analytics.DashboardData) ([]ChartSnippet, error) {
	if data == nil {
		return nil, nil
	}

	var snippets []ChartSnippet
	builders := []func(*analytics.DashboardData) (ChartSnippet, error){
		cg.generateRouteVolumeSnippet,
		cg.generateAirlineShareSnippet,
		cg.generateDeparturePeriodsSnippet,
		cg.generateDepartureHeatmapSnippet,
		cg.generateRouteMapSnippet,
		cg.generateEnrollmentTrendSnippet,
		cg.generateEnrollmentFunnelSnippet,
		cg.generateDepartmentSnippet,
		cg.generateHappinessScatterSnippet,
		cg.generateCorrelationHeatmapSnippet,
		cg.generateRegionalHappinessSnippet,
	}

	for _, build := range builders {
		snippet, err := build(data)
		if err != nil {
			logger.Warnf("Skipping chart snippet: %v", err)
			continue
		}
		snippets = append(snippets, snippet)
	}

	return snippets, nil
}

// GenerateCharts creates all static chart images for the report and returns
// the paths of the files it wrote.
func (cg *ChartGenerator) GenerateCharts(data *analytics.DashboardData) ([]string, error) {
	if data == nil {
		return nil, nil
	}

	var chartFiles []string
	builders := []func(*analytics.DashboardData) (string, error){
		cg.generateRouteVolumeChart,
		cg.generateEnrollmentTrendChart,
		cg.generateHappinessScatterChart,
	}

	for _, build := range builders {
		filename, err := build(data)
		if err != nil {
			logger.Warnf("Skipping chart image: %v", err)
			continue
		}
		chartFiles = append(chartFiles, filename)
	}

	return chartFiles, nil
}
