package datagen

import (
	"reflect"
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

func TestGenerateFlightsDeterminism(t *testing.T) {
	for _, hub := range Hubs() {
		t.Run(hub, func(t *testing.T) {
			first := GenerateFlights(NewRand(FlightSeed(hub)), hub)
			second := GenerateFlights(NewRand(FlightSeed(hub)), hub)

			if len(first) == 0 {
				t.Fatalf("Expected non-empty flight data for %s", hub)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("Expected identical tables for repeated generation of %s", hub)
			}
		})
	}
}

func TestGenerateFlightsJFK(t *testing.T) {
	flights := GenerateFlights(NewRand(FlightSeed("JFK")), "JFK")

	if len(flights) == 0 {
		t.Fatal("Expected non-empty flight data for JFK")
	}

	domesticAirlines := map[string]bool{}
	for _, a := range airlineNames[:5] {
		domesticAirlines[a] = true
	}
	allAirlines := map[string]bool{}
	for _, a := range airlineNames {
		allAirlines[a] = true
	}

	for i, f := range flights {
		if f.SourceAirport != "JFK" {
			t.Errorf("Row %d: expected source_airport JFK, got %q", i, f.SourceAirport)
		}
		if f.FlightHour < 5 || f.FlightHour >= 23 {
			t.Errorf("Row %d: flight_hour %d outside [5,23)", i, f.FlightHour)
		}
		if f.Distance <= 0 {
			t.Errorf("Row %d: expected positive distance, got %f", i, f.Distance)
		}
		if f.Domestic && !domesticAirlines[f.Airline] {
			t.Errorf("Row %d: domestic flight assigned international-only carrier %q", i, f.Airline)
		}
		if !allAirlines[f.Airline] {
			t.Errorf("Row %d: unknown airline %q", i, f.Airline)
		}
	}
}

func TestGenerateFlightsRouteCounts(t *testing.T) {
	flights := GenerateFlights(NewRand(FlightSeed("ATL")), "ATL")

	counts := map[string]int{}
	for _, f := range flights {
		counts[f.DestinationAirport]++
	}

	if len(counts) != len(destinationCatalog) {
		t.Errorf("Expected %d destinations, got %d", len(destinationCatalog), len(counts))
	}
	for dest, n := range counts {
		if n < minFlightsPerRoute || n > maxFlightsPerRoute {
			t.Errorf("Destination %s: %d flights outside [%d,%d]",
				dest, n, minFlightsPerRoute, maxFlightsPerRoute)
		}
	}
}

func TestGenerateFlightsUnknownAirport(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"non-hub airport", "LAX"},
		{"unknown code", "XYZ"},
		{"lowercase hub", "jfk"},
		{"empty code", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flights := GenerateFlights(NewRand(FlightSeed(tt.code)), tt.code)
			if len(flights) != 0 {
				t.Errorf("Expected empty result for %q, got %d rows", tt.code, len(flights))
			}
		})
	}
}

func TestFlightGeneratorTable(t *testing.T) {
	gen := FlightGenerator{Hub: "BOS"}
	if gen.Kind() != models.KindFlights {
		t.Errorf("Expected kind %q, got %q", models.KindFlights, gen.Kind())
	}

	table, err := gen.Generate(NewRand(gen.Seed()))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !reflect.DeepEqual(table.Columns, models.FlightColumns) {
		t.Errorf("Expected canonical flight columns, got %v", table.Columns)
	}
	if table.NumRows() == 0 {
		t.Error("Expected non-empty table for BOS")
	}

	unknown, err := FlightGenerator{Hub: "ZZZ"}.Generate(NewRand(1))
	if err != nil {
		t.Fatalf("Generate returned error for unknown hub: %v", err)
	}
	if unknown.NumRows() != 0 {
		t.Errorf("Expected empty table for unknown hub, got %d rows", unknown.NumRows())
	}
}

func TestHubCatalog(t *testing.T) {
	hubs := Hubs()
	if len(hubs) != 5 {
		t.Fatalf("Expected 5 hubs, got %d", len(hubs))
	}
	for _, code := range hubs {
		if !IsHub(code) {
			t.Errorf("Expected %s to be a hub", code)
		}
		if HubName(code) == "" {
			t.Errorf("Expected non-empty name for hub %s", code)
		}
		if _, _, ok := HubCoordinates(code); !ok {
			t.Errorf("Expected coordinates for hub %s", code)
		}
	}
	if IsHub("LAX") {
		t.Error("Expected LAX (destination only) not to be a hub")
	}
}

func BenchmarkGenerateFlights(b *testing.B) {
	seed := FlightSeed("JFK")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateFlights(NewRand(seed), "JFK")
	}
}
