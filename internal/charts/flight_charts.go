package charts

import (
	"fmt"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// heatmapDestinations bounds the Y axis of the departure density heatmap.
const heatmapDestinations = 8

// generateRouteVolumeSnippet builds an ECharts bar chart of destination
// traffic, colored by route type.
func (cg *ChartGenerator) generateRouteVolumeSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.Routes == nil {
		return ChartSnippet{}, fmt.Errorf("no route analysis for route volume chart")
	}
	id := "chart-route-volume"

	labels := make([]string, 0, len(data.Routes.Destinations))
	seriesData := make([]map[string]interface{}, 0, len(data.Routes.Destinations))
	for _, dest := range data.Routes.Destinations {
		labels = append(labels, dest.Airport)
		color := "#5470c6"
		if dest.RouteType == "International" {
			color = "#ee6666"
		}
		seriesData = append(seriesData, map[string]interface{}{
			"value":     dest.Flights,
			"itemStyle": map[string]interface{}{"color": color},
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Flights"},
		"series":  []interface{}{map[string]interface{}{"name": "Flights", "type": "bar", "data": seriesData, "barWidth": "50%"}},
	}

	return renderSnippet(id, fmt.Sprintf("Destination Traffic from %s", data.Routes.Hub), 360, option)
}

// generateAirlineShareSnippet builds an ECharts pie chart of airline market
// share at the hub.
func (cg *ChartGenerator) generateAirlineShareSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.Routes == nil {
		return ChartSnippet{}, fmt.Errorf("no route analysis for airline share chart")
	}
	id := "chart-airline-share"

	pieData := make([]map[string]interface{}, 0, len(data.Routes.AirlineShares))
	for _, share := range data.Routes.AirlineShares {
		pieData = append(pieData, map[string]interface{}{
			"value": share.Flights,
			"name":  share.Airline,
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item", "formatter": "{b}: {c} ({d}%)"},
		"legend":  map[string]interface{}{"orient": "vertical", "left": "left", "top": "middle"},
		"series": []interface{}{map[string]interface{}{
			"name":   "Airline",
			"type":   "pie",
			"radius": "62%",
			"center": []string{"58%", "50%"},
			"data":   pieData,
			"emphasis": map[string]interface{}{
				"itemStyle": map[string]interface{}{"shadowBlur": 10, "shadowOffsetX": 0, "shadowColor": "rgba(0,0,0,0.4)"},
			},
		}},
	}

	return renderSnippet(id, "Airline Market Share", 400, option)
}

// generateDeparturePeriodsSnippet builds an ECharts bar chart of flight
// volume per departure period.
func (cg *ChartGenerator) generateDeparturePeriodsSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.Routes == nil {
		return ChartSnippet{}, fmt.Errorf("no route analysis for departure periods chart")
	}
	id := "chart-departure-periods"

	labels := make([]string, 0, len(data.Routes.TimeDistribution))
	seriesData := make([]map[string]interface{}, 0, len(data.Routes.TimeDistribution))
	for _, bin := range data.Routes.TimeDistribution {
		labels = append(labels, bin.Period)
		seriesData = append(seriesData, map[string]interface{}{"value": bin.Flights})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Flights"},
		"series":  []interface{}{map[string]interface{}{"name": "Departures", "type": "bar", "data": seriesData, "barWidth": "40%"}},
	}

	return renderSnippet(id, "Departures by Time Period", 360, option)
}

// generateDepartureHeatmapSnippet builds an ECharts heatmap of departure
// density by hour of day across the busiest destinations.
func (cg *ChartGenerator) generateDepartureHeatmapSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.Routes == nil || len(data.FlightRecords) == 0 {
		return ChartSnippet{}, fmt.Errorf("no flight records for departure heatmap")
	}
	id := "chart-departure-heatmap"

	top := data.Routes.TopDestinations(heatmapDestinations)
	airports := make([]string, 0, len(top))
	rowIndex := make(map[string]int, len(top))
	for i, dest := range top {
		airports = append(airports, dest.Airport)
		rowIndex[dest.Airport] = i
	}

	counts := make(map[[2]int]int)
	maxCount := 0
	for _, rec := range data.FlightRecords {
		row, ok := rowIndex[rec.DestinationAirport]
		if !ok || rec.FlightHour < 0 || rec.FlightHour > 23 {
			continue
		}
		key := [2]int{rec.FlightHour, row}
		counts[key]++
		if counts[key] > maxCount {
			maxCount = counts[key]
		}
	}

	hours := make([]string, 24)
	cells := make([]interface{}, 0, len(counts))
	for h := 0; h < 24; h++ {
		hours[h] = fmt.Sprintf("%02d", h)
		for row := range airports {
			if count := counts[[2]int{h, row}]; count > 0 {
				cells = append(cells, []interface{}{h, row, count})
			}
		}
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"position": "top"},
		"grid":    map[string]interface{}{"left": "10%", "right": "6%", "bottom": "18%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": hours, "splitArea": map[string]interface{}{"show": true}},
		"yAxis":   map[string]interface{}{"type": "category", "data": airports, "splitArea": map[string]interface{}{"show": true}},
		"visualMap": map[string]interface{}{
			"min": 0, "max": maxCount, "calculable": true,
			"orient": "horizontal", "left": "center", "bottom": "0%",
		},
		"series": []interface{}{map[string]interface{}{
			"name": "Departures",
			"type": "heatmap",
			"data": cells,
		}},
	}

	return renderSnippet(id, "Departure Density by Hour", 420, option)
}
