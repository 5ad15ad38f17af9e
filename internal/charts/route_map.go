package charts

import (
	"encoding/json"
	"fmt"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
)

const (
	leafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	leafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// routeFeature is the JSON payload for one polyline on the route map.
type routeFeature struct {
	Airport  string  `json:"airport"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Flights  int     `json:"flights"`
	Domestic bool    `json:"domestic"`
	Weight   int     `json:"weight"`
}

// generateRouteMapSnippet builds a Leaflet map with the hub marker and one
// polyline per destination, weighted by flight count.
func (cg *ChartGenerator) generateRouteMapSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.Routes == nil || len(data.FlightRecords) == 0 {
		return ChartSnippet{}, fmt.Errorf("no flight records for route map")
	}
	hubLat, hubLon, ok := datagen.HubCoordinates(data.Hub)
	if !ok {
		return ChartSnippet{}, fmt.Errorf("unknown hub airport %s for route map", data.Hub)
	}
	id := "chart-route-map"

	type destCoords struct {
		name     string
		lat, lon float64
	}
	coords := make(map[string]destCoords)
	for _, rec := range data.FlightRecords {
		if _, seen := coords[rec.DestinationAirport]; !seen {
			coords[rec.DestinationAirport] = destCoords{name: rec.DestinationName, lat: rec.DestinationLat, lon: rec.DestinationLon}
		}
	}

	features := make([]routeFeature, 0, len(data.Routes.Destinations))
	for _, dest := range data.Routes.Destinations {
		c, found := coords[dest.Airport]
		if !found {
			continue
		}
		weight := 1 + dest.Flights/4
		if weight > 6 {
			weight = 6
		}
		features = append(features, routeFeature{
			Airport:  dest.Airport,
			Name:     c.name,
			Lat:      c.lat,
			Lon:      c.lon,
			Flights:  dest.Flights,
			Domestic: dest.RouteType == "Domestic",
			Weight:   weight,
		})
	}

	routesJSON, err := json.Marshal(features)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal route map data: %w", err)
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:480px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el||typeof L==='undefined')return;var map=L.map('%s').setView([%f,%f],4);L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png',{attribution:'&copy; OpenStreetMap contributors'}).addTo(map);var routes=%s;L.marker([%f,%f]).addTo(map).bindPopup('<b>%s</b><br/>%s');routes.forEach(function(r){var color=r.domestic?'#1f77b4':'#d62728';L.polyline([[%f,%f],[r.lat,r.lon]],{color:color,weight:r.weight,opacity:0.7}).addTo(map);L.circleMarker([r.lat,r.lon],{radius:4,color:color,fillOpacity:0.8}).addTo(map).bindPopup('<b>'+r.airport+'</b> '+r.name+'<br/>'+r.flights+' flights');});})();</script>`,
		id, id, hubLat, hubLon, string(routesJSON), hubLat, hubLon, data.Hub, datagen.HubName(data.Hub), hubLat, hubLon)

	title := fmt.Sprintf("Route Network from %s", data.Hub)
	completeHTML := fmt.Sprintf(`<link rel="stylesheet" href="%s"/>
<script src="%s"></script>
<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, leafletCSS, leafletJS, title, div, script)

	return ChartSnippet{
		ID:     id,
		Title:  title,
		Div:    div,
		Script: script,
		HTML:   completeHTML,
		Width:  "100%",
		Height: "480px",
	}, nil
}
