package charts

import (
	"fmt"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// generateHappinessScatterSnippet builds an ECharts scatter of GDP per capita
// against happiness score with the fitted regression line overlaid.
func (cg *ChartGenerator) generateHappinessScatterSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.HappinessStats == nil || len(data.HappinessRecords) == 0 {
		return ChartSnippet{}, fmt.Errorf("no happiness records for scatter chart")
	}
	id := "chart-happiness-scatter"

	points := make([]interface{}, 0, len(data.HappinessRecords))
	minGDP, maxGDP := data.HappinessRecords[0].GDPPerCapita, data.HappinessRecords[0].GDPPerCapita
	for _, rec := range data.HappinessRecords {
		points = append(points, []interface{}{rec.GDPPerCapita, rec.HappinessScore, rec.Country})
		if rec.GDPPerCapita < minGDP {
			minGDP = rec.GDPPerCapita
		}
		if rec.GDPPerCapita > maxGDP {
			maxGDP = rec.GDPPerCapita
		}
	}

	regression := data.HappinessStats.GDPRegression
	trend := []interface{}{
		[]interface{}{minGDP, round2(regression.Predict(minGDP))},
		[]interface{}{maxGDP, round2(regression.Predict(maxGDP))},
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item"},
		"grid":    map[string]interface{}{"left": "8%", "right": "6%", "bottom": "10%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "value", "name": "GDP per Capita", "scale": true},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Happiness Score", "scale": true},
		"series": []interface{}{
			map[string]interface{}{"name": "Countries", "type": "scatter", "symbolSize": 10, "data": points},
			map[string]interface{}{
				"name": "Trend", "type": "line", "showSymbol": false, "data": trend,
				"lineStyle": map[string]interface{}{"width": 2, "type": "dashed", "color": "#ee6666"},
			},
		},
	}

	return renderSnippet(id, "GDP vs Happiness Score", 420, option)
}

// generateCorrelationHeatmapSnippet builds an ECharts heatmap of the pairwise
// correlations between the happiness factors.
func (cg *ChartGenerator) generateCorrelationHeatmapSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.HappinessStats == nil || data.HappinessStats.Correlations == nil {
		return ChartSnippet{}, fmt.Errorf("no correlation matrix for heatmap")
	}
	id := "chart-correlation-heatmap"

	matrix := data.HappinessStats.Correlations
	cells := make([]interface{}, 0, len(matrix.Columns)*len(matrix.Columns))
	for i := range matrix.Columns {
		for j := range matrix.Columns {
			cells = append(cells, []interface{}{j, i, round2(matrix.Values[i][j])})
		}
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"position": "top"},
		"grid":    map[string]interface{}{"left": "18%", "right": "6%", "bottom": "24%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": matrix.Columns, "axisLabel": map[string]interface{}{"rotate": 40}},
		"yAxis":   map[string]interface{}{"type": "category", "data": matrix.Columns},
		"visualMap": map[string]interface{}{
			"min": -1, "max": 1, "calculable": true,
			"orient": "horizontal", "left": "center", "bottom": "0%",
			"inRange": map[string]interface{}{"color": []string{"#d73027", "#ffffbf", "#1a9850"}},
		},
		"series": []interface{}{map[string]interface{}{
			"name":  "Correlation",
			"type":  "heatmap",
			"data":  cells,
			"label": map[string]interface{}{"show": true},
		}},
	}

	return renderSnippet(id, "Happiness Factor Correlations", 480, option)
}

// generateRegionalHappinessSnippet builds an ECharts bar chart of mean
// happiness score per region.
func (cg *ChartGenerator) generateRegionalHappinessSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.HappinessStats == nil || len(data.HappinessStats.Regions) == 0 {
		return ChartSnippet{}, fmt.Errorf("no regional summaries for happiness chart")
	}
	id := "chart-regional-happiness"

	labels := make([]string, 0, len(data.HappinessStats.Regions))
	seriesData := make([]map[string]interface{}, 0, len(data.HappinessStats.Regions))
	for _, region := range data.HappinessStats.Regions {
		labels = append(labels, region.Region)
		seriesData = append(seriesData, map[string]interface{}{"value": round2(region.MeanScore)})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "18%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels, "axisLabel": map[string]interface{}{"rotate": 30}},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Mean Score"},
		"series":  []interface{}{map[string]interface{}{"name": "Mean Score", "type": "bar", "data": seriesData, "barWidth": "45%"}},
	}

	return renderSnippet(id, "Happiness by Region", 380, option)
}
