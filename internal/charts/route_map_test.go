package charts

import (
	"strings"
	"testing"
)

func TestGenerateRouteMapSnippet(t *testing.T) {
	generator := NewChartGenerator("/test")
	data := testDashboardData(t)

	snippet, err := generator.generateRouteMapSnippet(data)
	if err != nil {
		t.Fatalf("generateRouteMapSnippet failed: %v", err)
	}

	if snippet.ID != "chart-route-map" {
		t.Errorf("Expected ID 'chart-route-map', got '%s'", snippet.ID)
	}
	if !strings.Contains(snippet.Title, "JFK") {
		t.Errorf("Expected hub in title, got '%s'", snippet.Title)
	}

	// Script builds a Leaflet map with markers and polylines.
	if !strings.Contains(snippet.Script, "L.map") {
		t.Error("Script should initialize a Leaflet map")
	}
	if !strings.Contains(snippet.Script, "L.tileLayer") {
		t.Error("Script should add a tile layer")
	}
	if !strings.Contains(snippet.Script, "L.polyline") {
		t.Error("Script should draw route polylines")
	}
	if !strings.Contains(snippet.Script, "bindPopup") {
		t.Error("Script should bind popups")
	}
	if !strings.Contains(snippet.Script, "JFK") {
		t.Error("Script should mention the hub code")
	}

	// HTML pulls in the Leaflet assets.
	if !strings.Contains(snippet.HTML, leafletCSS) {
		t.Error("HTML should reference the Leaflet stylesheet")
	}
	if !strings.Contains(snippet.HTML, leafletJS) {
		t.Error("HTML should reference the Leaflet script")
	}

	// Every analyzed destination appears in the routes payload.
	for _, dest := range data.Routes.Destinations {
		if !strings.Contains(snippet.Script, dest.Airport) {
			t.Errorf("Route map missing destination %s", dest.Airport)
		}
	}
}

func TestGenerateRouteMapSnippetUnknownHub(t *testing.T) {
	generator := NewChartGenerator("/test")
	data := testDashboardData(t)
	data.Hub = "ZZZ"

	if _, err := generator.generateRouteMapSnippet(data); err == nil {
		t.Error("Expected error for unknown hub, got none")
	}
}

func TestGenerateRouteMapSnippetWithoutRecords(t *testing.T) {
	generator := NewChartGenerator("/test")
	data := testDashboardData(t)
	data.FlightRecords = nil

	if _, err := generator.generateRouteMapSnippet(data); err == nil {
		t.Error("Expected error without flight records, got none")
	}
}

func TestGenerateRouteMapSnippetConsistency(t *testing.T) {
	generator := NewChartGenerator("/test")
	data := testDashboardData(t)

	snippet1, err1 := generator.generateRouteMapSnippet(data)
	snippet2, err2 := generator.generateRouteMapSnippet(data)

	if err1 != nil {
		t.Fatalf("First generation failed: %v", err1)
	}
	if err2 != nil {
		t.Fatalf("Second generation failed: %v", err2)
	}
	if snippet1.Script != snippet2.Script {
		t.Error("Inconsistent route map script")
	}
}
