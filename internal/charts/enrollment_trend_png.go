package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// generateEnrollmentTrendChart creates a line chart of yearly application,
// admission and enrollment volumes.
func (cg *ChartGenerator) generateEnrollmentTrendChart(data *analytics.DashboardData) (string, error) {
	if data == nil || data.EnrollmentStats == nil || len(data.EnrollmentStats.Years) == 0 {
		return "", fmt.Errorf("no enrollment data for trend chart")
	}
	filename := filepath.Join(cg.outputDir, "enrollment_trend.png")

	stats := data.EnrollmentStats
	xValues := make([]float64, 0, len(stats.Years))
	applications := make([]float64, 0, len(stats.Years))
	admitted := make([]float64, 0, len(stats.Years))
	enrolled := make([]float64, 0, len(stats.Years))
	ticks := make([]chart.Tick, 0, len(stats.Years))
	for _, year := range stats.Years {
		xValues = append(xValues, float64(year.Year))
		applications = append(applications, float64(year.Applications))
		admitted = append(admitted, float64(year.Admitted))
		enrolled = append(enrolled, float64(year.Enrolled))
		ticks = append(ticks, chart.Tick{Value: float64(year.Year), Label: strconv.Itoa(year.Year)})
	}

	graph := chart.Chart{
		Title:      "University Enrollment Trends",
		TitleStyle: chart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 70, Right: 30, Bottom: 60},
		},
		Width:  900,
		Height: 450,
		XAxis: chart.XAxis{
			Name:      "Year",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
			Ticks:     ticks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:      "Students",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Applications",
				Style:   chart.Style{StrokeColor: drawing.Color{R: 51, G: 102, B: 204, A: 255}, StrokeWidth: 2},
				XValues: xValues,
				YValues: applications,
			},
			chart.ContinuousSeries{
				Name:    "Admitted",
				Style:   chart.Style{StrokeColor: drawing.Color{R: 40, G: 167, B: 69, A: 255}, StrokeWidth: 2},
				XValues: xValues,
				YValues: admitted,
			},
			chart.ContinuousSeries{
				Name:    "Enrolled",
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 193, B: 7, A: 255}, StrokeWidth: 2},
				XValues: xValues,
				YValues: enrolled,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create enrollment trend chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render enrollment trend chart: %w", err)
	}

	return filename, nil
}
