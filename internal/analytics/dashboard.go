package analytics

import (
	"fmt"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// DashboardData is the composite handed to chart and report generation:
// the three tagged datasets, their typed records and the computed
// analytics.
type DashboardData struct {
	GeneratedAt time.Time `json:"generated_at"`
	Hub         string    `json:"hub"`

	Flights    *models.Dataset `json:"flights"`
	Enrollment *models.Dataset `json:"enrollment"`
	Happiness  *models.Dataset `json:"happiness"`

	FlightRecords     []models.FlightRecord     `json:"-"`
	EnrollmentRecords []models.EnrollmentRecord `json:"-"`
	HappinessRecords  []models.HappinessRecord  `json:"-"`

	Routes          *RouteAnalysis      `json:"routes"`
	EnrollmentStats *EnrollmentAnalysis `json:"enrollment_stats"`
	HappinessStats  *HappinessAnalysis  `json:"happiness_stats"`
}

// BuildDashboardData converts the datasets to typed records and runs all
// three analyses. It fails when any dataset cannot be analyzed, which for
// flights includes unknown hub codes.
func BuildDashboardData(hub string, flights, enrollment, happiness *models.Dataset) (*DashboardData, error) {
	data := &DashboardData{
		GeneratedAt: time.Now(),
		Hub:         hub,
		Flights:     flights,
		Enrollment:  enrollment,
		Happiness:   happiness,
	}

	data.FlightRecords = models.FlightRecords(flights.Table)
	data.EnrollmentRecords = models.EnrollmentRecords(enrollment.Table)
	data.HappinessRecords = models.HappinessRecords(happiness.Table)

	var err error
	if data.Routes, err = AnalyzeRoutes(data.FlightRecords); err != nil {
		return nil, fmt.Errorf("failed to analyze routes for %s: %w", hub, err)
	}
	if data.EnrollmentStats, err = AnalyzeEnrollment(data.EnrollmentRecords); err != nil {
		return nil, fmt.Errorf("failed to analyze enrollment: %w", err)
	}
	if data.HappinessStats, err = AnalyzeHappiness(data.HappinessRecords); err != nil {
		return nil, fmt.Errorf("failed to analyze happiness: %w", err)
	}

	return data, nil
}
