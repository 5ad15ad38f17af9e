package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// generateHappinessScatterChart creates a scatter plot of GDP per capita
// against happiness score with the fitted regression line.
func (cg *ChartGenerator) generateHappinessScatterChart(data *analytics.DashboardData) (string, error) {
	if data == nil || data.HappinessStats == nil || len(data.HappinessRecords) == 0 {
		return "", fmt.Errorf("no happiness data for scatter chart")
	}
	filename := filepath.Join(cg.outputDir, "happiness_scatter.png")

	gdp := make([]float64, 0, len(data.HappinessRecords))
	scores := make([]float64, 0, len(data.HappinessRecords))
	minGDP, maxGDP := data.HappinessRecords[0].GDPPerCapita, data.HappinessRecords[0].GDPPerCapita
	for _, rec := range data.HappinessRecords {
		gdp = append(gdp, rec.GDPPerCapita)
		scores = append(scores, rec.HappinessScore)
		if rec.GDPPerCapita < minGDP {
			minGDP = rec.GDPPerCapita
		}
		if rec.GDPPerCapita > maxGDP {
			maxGDP = rec.GDPPerCapita
		}
	}

	scatter := chart.ContinuousSeries{
		Name: "Countries",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    drawing.Color{R: 51, G: 102, B: 204, A: 255},
		},
		XValues: gdp,
		YValues: scores,
	}

	regression := data.HappinessStats.GDPRegression
	trend := chart.ContinuousSeries{
		Name: "Trend",
		Style: chart.Style{
			StrokeColor:     drawing.Color{R: 220, G: 53, B: 69, A: 255},
			StrokeWidth:     2,
			StrokeDashArray: []float64{5, 5},
		},
		XValues: []float64{minGDP, maxGDP},
		YValues: []float64{regression.Predict(minGDP), regression.Predict(maxGDP)},
	}

	graph := chart.Chart{
		Title:      "GDP vs Happiness Score",
		TitleStyle: chart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 70, Right: 30, Bottom: 60},
		},
		Width:  900,
		Height: 450,
		XAxis: chart.XAxis{
			Name:      "GDP per Capita",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		YAxis: chart.YAxis{
			Name:      "Happiness Score",
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		Series: []chart.Series{scatter, trend},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create happiness scatter chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render happiness scatter chart: %w", err)
	}

	return filename, nil
}
