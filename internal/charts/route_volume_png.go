package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// pngDestinations bounds the bar count of the route volume image.
const pngDestinations = 8

// generateRouteVolumeChart creates a bar chart of the busiest destinations.
func (cg *ChartGenerator) generateRouteVolumeChart(data *analytics.DashboardData) (string, error) {
	if data == nil || data.Routes == nil || len(data.Routes.Destinations) == 0 {
		return "", fmt.Errorf("no route data for volume chart")
	}
	filename := filepath.Join(cg.outputDir, "route_volume.png")

	domestic := drawing.Color{R: 51, G: 102, B: 204, A: 255}
	international := drawing.Color{R: 220, G: 53, B: 69, A: 255}

	top := data.Routes.TopDestinations(pngDestinations)
	bars := make([]chart.Value, 0, len(top))
	for _, dest := range top {
		color := domestic
		if dest.RouteType == "International" {
			color = international
		}
		bars = append(bars, chart.Value{
			Value: float64(dest.Flights),
			Label: dest.Airport,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Top Destinations from %s", data.Routes.Hub),
		TitleStyle: chart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 60, Right: 30, Bottom: 40},
		},
		Width:    900,
		Height:   450,
		BarWidth: 56,
		XAxis:    chart.Style{FontSize: 10},
		YAxis: chart.YAxis{
			Name:      "Flights",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		Bars: bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create route volume chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render route volume chart: %w", err)
	}

	return filename, nil
}
