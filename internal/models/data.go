package models

// FlightRecord represents one simulated flight departing a hub airport
type FlightRecord struct {
	SourceAirport      string  `json:"source_airport"`      // 3-letter hub code
	DestinationAirport string  `json:"destination_airport"` // 3-letter destination code
	DestinationName    string  `json:"destination_name"`    // Full airport name
	DestinationLat     float64 `json:"destination_lat"`     // Degrees
	DestinationLon     float64 `json:"destination_lon"`     // Degrees
	Airline            string  `json:"airline"`             // Operating carrier name
	FlightHour         int     `json:"flight_hour"`         // Departure hour, 0-23
	Domestic           bool    `json:"domestic"`            // Destination within the source country
	Region             string  `json:"region"`              // Destination region label
	Distance           float64 `json:"distance"`            // Approximate miles
}

// EnrollmentRecord represents one year-term of university admission data
type EnrollmentRecord struct {
	Year                int     `json:"year"`
	Term                string  `json:"term"` // Spring or Fall
	Applications        int     `json:"applications"`
	Admitted            int     `json:"admitted"`
	Enrolled            int     `json:"enrolled"`
	RetentionRate       float64 `json:"retention_rate_pct"`       // 0-100
	StudentSatisfaction float64 `json:"student_satisfaction_pct"` // 0-100
	EngineeringEnrolled int     `json:"engineering_enrolled"`
	BusinessEnrolled    int     `json:"business_enrolled"`
	ArtsEnrolled        int     `json:"arts_enrolled"`
	ScienceEnrolled     int     `json:"science_enrolled"`
}

// HappinessRecord represents one country row of World Happiness Report data
type HappinessRecord struct {
	Rank                  int     `json:"rank"` // Position after descending sort by score
	Country               string  `json:"country"`
	HappinessScore        float64 `json:"happiness_score"` // 0-10
	GDPPerCapita          float64 `json:"gdp_per_capita"`
	SocialSupport         float64 `json:"social_support"`
	HealthyLifeExpectancy float64 `json:"healthy_life_expectancy"`
	Freedom               float64 `json:"freedom"`
	Generosity            float64 `json:"generosity"`
	Corruption            float64 `json:"corruption"`
	Region                string  `json:"region"`
}
