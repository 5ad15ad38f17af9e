package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// timePeriods are the departure-hour bins, right-closed like the
// dashboard's pandas cut: hour h lands in the first bin with h <= upper.
var timePeriods = []struct {
	Label string
	Upper int
}{
	{"Early Morning (0-6)", 6},
	{"Morning (6-12)", 12},
	{"Afternoon (12-18)", 18},
	{"Evening (18-24)", 24},
}

// DestinationTraffic is the per-destination route volume.
type DestinationTraffic struct {
	Airport   string  `json:"airport"`
	Name      string  `json:"name"`
	Flights   int     `json:"flights"`
	SharePct  float64 `json:"share_pct"`
	RouteType string  `json:"route_type"`
}

// AirlineShare is one carrier's market share at the hub.
type AirlineShare struct {
	Airline  string  `json:"airline"`
	Flights  int     `json:"flights"`
	SharePct float64 `json:"share_pct"`
}

// AirlineSegment splits one carrier's operations by route type.
type AirlineSegment struct {
	Airline       string `json:"airline"`
	Domestic      int    `json:"domestic"`
	International int    `json:"international"`
}

// TimeBin is the flight volume within one departure period.
type TimeBin struct {
	Period   string  `json:"period"`
	Flights  int     `json:"flights"`
	SharePct float64 `json:"share_pct"`
}

// RouteAnalysis aggregates a hub's flight records for the dashboard.
type RouteAnalysis struct {
	Hub                  string               `json:"hub"`
	TotalFlights         int                  `json:"total_flights"`
	DomesticFlights      int                  `json:"domestic_flights"`
	InternationalFlights int                  `json:"international_flights"`
	DomesticPct          float64              `json:"domestic_pct"`
	InternationalPct     float64              `json:"international_pct"`
	Destinations         []DestinationTraffic `json:"destinations"`
	TimeDistribution     []TimeBin            `json:"time_distribution"`
	AirlineShares        []AirlineShare       `json:"airline_shares"`
	AirlineSegments      []AirlineSegment     `json:"airline_segments"`
	Top3AirlineSharePct  float64              `json:"top3_airline_share_pct"`
}

// topAirlineShares bounds the market share list; topAirlineSegments bounds
// the per-carrier route type split.
const (
	topAirlineShares   = 8
	topAirlineSegments = 6
)

// TopDestinations returns the n busiest destinations.
func (a *RouteAnalysis) TopDestinations(n int) []DestinationTraffic {
	if n > len(a.Destinations) {
		n = len(a.Destinations)
	}
	return a.Destinations[:n]
}

// AnalyzeRoutes computes route, carrier and departure-time aggregates for
// one hub's flights.
func AnalyzeRoutes(records []models.FlightRecord) (*RouteAnalysis, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no flight records to analyze")
	}

	analysis := &RouteAnalysis{
		Hub:          records[0].SourceAirport,
		TotalFlights: len(records),
	}

	type destAgg struct {
		name     string
		flights  int
		domestic bool
	}
	destinations := map[string]*destAgg{}
	airlineCounts := map[string]int{}
	airlineDomestic := map[string]int{}
	airlineInternational := map[string]int{}
	timeCounts := make([]int, len(timePeriods))

	for _, rec := range records {
		if rec.Domestic {
			analysis.DomesticFlights++
		} else {
			analysis.InternationalFlights++
		}

		agg := destinations[rec.DestinationAirport]
		if agg == nil {
			agg = &destAgg{name: rec.DestinationName, domestic: rec.Domestic}
			destinations[rec.DestinationAirport] = agg
		}
		agg.flights++

		airlineCounts[rec.Airline]++
		if rec.Domestic {
			airlineDomestic[rec.Airline]++
		} else {
			airlineInternational[rec.Airline]++
		}

		for i, period := range timePeriods {
			if rec.FlightHour <= period.Upper {
				timeCounts[i]++
				break
			}
		}
	}

	total := float64(analysis.TotalFlights)
	analysis.DomesticPct = round1(float64(analysis.DomesticFlights) / total * 100)
	analysis.InternationalPct = round1(float64(analysis.InternationalFlights) / total * 100)

	for airport, agg := range destinations {
		routeType := "International"
		if agg.domestic {
			routeType = "Domestic"
		}
		analysis.Destinations = append(analysis.Destinations, DestinationTraffic{
			Airport:   airport,
			Name:      agg.name,
			Flights:   agg.flights,
			SharePct:  round1(float64(agg.flights) / total * 100),
			RouteType: routeType,
		})
	}
	sort.SliceStable(analysis.Destinations, func(i, j int) bool {
		if analysis.Destinations[i].Flights != analysis.Destinations[j].Flights {
			return analysis.Destinations[i].Flights > analysis.Destinations[j].Flights
		}
		return analysis.Destinations[i].Airport < analysis.Destinations[j].Airport
	})

	for i, period := range timePeriods {
		analysis.TimeDistribution = append(analysis.TimeDistribution, TimeBin{
			Period:   period.Label,
			Flights:  timeCounts[i],
			SharePct: round1(float64(timeCounts[i]) / total * 100),
		})
	}

	for airline, count := range airlineCounts {
		analysis.AirlineShares = append(analysis.AirlineShares, AirlineShare{
			Airline:  airline,
			Flights:  count,
			SharePct: round1(float64(count) / total * 100),
		})
	}
	sort.SliceStable(analysis.AirlineShares, func(i, j int) bool {
		if analysis.AirlineShares[i].Flights != analysis.AirlineShares[j].Flights {
			return analysis.AirlineShares[i].Flights > analysis.AirlineShares[j].Flights
		}
		return analysis.AirlineShares[i].Airline < analysis.AirlineShares[j].Airline
	})

	for i, share := range analysis.AirlineShares {
		if i >= 3 {
			break
		}
		analysis.Top3AirlineSharePct = round1(analysis.Top3AirlineSharePct + share.SharePct)
	}
	for _, share := range analysis.AirlineShares {
		if len(analysis.AirlineSegments) >= topAirlineSegments {
			break
		}
		analysis.AirlineSegments = append(analysis.AirlineSegments, AirlineSegment{
			Airline:       share.Airline,
			Domestic:      airlineDomestic[share.Airline],
			International: airlineInternational[share.Airline],
		})
	}
	if len(analysis.AirlineShares) > topAirlineShares {
		analysis.AirlineShares = analysis.AirlineShares[:topAirlineShares]
	}

	return analysis, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
