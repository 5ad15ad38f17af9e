package datagen

import (
	"math"
	"math/rand"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// hubInfo holds the static coordinates of a supported origin airport
type hubInfo struct {
	Name string
	Lat  float64
	Lon  float64
}

// destinationInfo holds the static catalog entry for one destination
type destinationInfo struct {
	Code     string
	Name     string
	Lat      float64
	Lon      float64
	Domestic bool
	Region   string
}

var hubAirports = map[string]hubInfo{
	"JFK": {Name: "John F. Kennedy International", Lat: 40.6413, Lon: -73.7781},
	"ATL": {Name: "Hartsfield-Jackson Atlanta International", Lat: 33.6407, Lon: -84.4277},
	"MIA": {Name: "Miami International", Lat: 25.7932, Lon: -80.2906},
	"BOS": {Name: "Boston Logan International", Lat: 42.3656, Lon: -71.0096},
	"PHL": {Name: "Philadelphia International", Lat: 39.8729, Lon: -75.2437},
}

// hubOrder keeps hub listing deterministic
var hubOrder = []string{"JFK", "ATL", "MIA", "BOS", "PHL"}

// destinationCatalog is ordered: generation iterates it in this exact
// sequence, which the determinism guarantee depends on.
var destinationCatalog = []destinationInfo{
	{Code: "LAX", Name: "Los Angeles International", Lat: 33.9416, Lon: -118.4085, Domestic: true, Region: "West Coast"},
	{Code: "ORD", Name: "Chicago O'Hare International", Lat: 41.9786, Lon: -87.9048, Domestic: true, Region: "Midwest"},
	{Code: "DFW", Name: "Dallas/Fort Worth International", Lat: 32.8968, Lon: -97.0380, Domestic: true, Region: "South"},
	{Code: "DEN", Name: "Denver International", Lat: 39.8561, Lon: -104.6737, Domestic: true, Region: "Mountain"},
	{Code: "SFO", Name: "San Francisco International", Lat: 37.6213, Lon: -122.3790, Domestic: true, Region: "West Coast"},
	{Code: "SEA", Name: "Seattle-Tacoma International", Lat: 47.4502, Lon: -122.3088, Domestic: true, Region: "Northwest"},
	{Code: "MCO", Name: "Orlando International", Lat: 28.4312, Lon: -81.3081, Domestic: true, Region: "Southeast"},
	{Code: "LHR", Name: "London Heathrow", Lat: 51.4700, Lon: -0.4543, Domestic: false, Region: "Europe"},
	{Code: "CDG", Name: "Paris Charles de Gaulle", Lat: 49.0097, Lon: 2.5479, Domestic: false, Region: "Europe"},
	{Code: "FRA", Name: "Frankfurt Airport", Lat: 50.0379, Lon: 8.5622, Domestic: false, Region: "Europe"},
	{Code: "NRT", Name: "Tokyo Narita International", Lat: 35.7647, Lon: 140.3864, Domestic: false, Region: "Asia"},
	{Code: "HKG", Name: "Hong Kong International", Lat: 22.3080, Lon: 113.9185, Domestic: false, Region: "Asia"},
	{Code: "SYD", Name: "Sydney Airport", Lat: -33.9399, Lon: 151.1753, Domestic: false, Region: "Oceania"},
	{Code: "GRU", Name: "São Paulo/Guarulhos International", Lat: -23.4356, Lon: -46.4731, Domestic: false, Region: "South America"},
}

var airlineNames = []string{
	"American Airlines", "Delta Air Lines", "United Airlines",
	"Southwest Airlines", "JetBlue Airways", "British Airways",
	"Lufthansa", "Air France", "Emirates", "Qatar Airways",
}

// Domestic routes draw from the first five carriers only
var (
	domesticAirlineWeights      = []float64{0.3, 0.25, 0.2, 0.15, 0.1}
	internationalAirlineWeights = []float64{0.15, 0.15, 0.15, 0.05, 0.05, 0.1, 0.1, 0.1, 0.08, 0.07}
)

const (
	baseDomesticFlights      = 15
	baseInternationalFlights = 8
	minFlightsPerRoute       = 2
	maxFlightsPerRoute       = 25

	// Departure window: realistic operating hours, upper bound exclusive
	earliestFlightHour = 5
	latestFlightHour   = 23

	// Euclidean degrees to approximate miles
	degreesToMiles = 69.0
)

// Hubs returns the supported hub airport codes in display order
func Hubs() []string {
	return append([]string(nil), hubOrder...)
}

// IsHub reports whether the airport code belongs to the supported hub set
func IsHub(airportCode string) bool {
	_, ok := hubAirports[airportCode]
	return ok
}

// HubName returns the full name of a hub airport, or "" for unknown codes
func HubName(airportCode string) string {
	return hubAirports[airportCode].Name
}

// HubCoordinates returns the hub's lat/lon, or ok=false for unknown codes
func HubCoordinates(airportCode string) (lat, lon float64, ok bool) {
	hub, ok := hubAirports[airportCode]
	return hub.Lat, hub.Lon, ok
}

// GenerateFlights produces the synthetic route table for one hub airport.
// Closer and domestic destinations get more flights; the per-route count is
// clamped to [2,25]. Unknown airport codes yield an empty result.
func GenerateFlights(rng *rand.Rand, airportCode string) []models.FlightRecord {
	hub, ok := hubAirports[airportCode]
	if !ok {
		return nil
	}

	var flights []models.FlightRecord
	for _, dest := range destinationCatalog {
		distance := math.Sqrt(math.Pow(hub.Lat-dest.Lat, 2) + math.Pow(hub.Lon-dest.Lon, 2))

		base := baseInternationalFlights
		if dest.Domestic {
			base = baseDomesticFlights
		}
		distanceFactor := math.Max(0.3, 1/(distance*0.01+0.5))
		numFlights := int(float64(base) * distanceFactor)
		if numFlights < minFlightsPerRoute {
			numFlights = minFlightsPerRoute
		}
		if numFlights > maxFlightsPerRoute {
			numFlights = maxFlightsPerRoute
		}

		for i := 0; i < numFlights; i++ {
			var airline string
			if dest.Domestic {
				airline = weightedPick(rng, airlineNames[:5], domesticAirlineWeights)
			} else {
				airline = weightedPick(rng, airlineNames, internationalAirlineWeights)
			}

			flights = append(flights, models.FlightRecord{
				SourceAirport:      airportCode,
				DestinationAirport: dest.Code,
				DestinationName:    dest.Name,
				DestinationLat:     dest.Lat,
				DestinationLon:     dest.Lon,
				Airline:            airline,
				FlightHour:         earliestFlightHour + rng.Intn(latestFlightHour-earliestFlightHour),
				Domestic:           dest.Domestic,
				Region:             dest.Region,
				Distance:           distance * degreesToMiles,
			})
		}
	}

	return flights
}
