package analytics

import (
	"fmt"
	"sort"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// YearTotals sums both terms of one academic year.
type YearTotals struct {
	Year         int `json:"year"`
	Applications int `json:"applications"`
	Admitted     int `json:"admitted"`
	Enrolled     int `json:"enrolled"`
}

// DepartmentTotal is the cumulative enrollment of one department.
type DepartmentTotal struct {
	Department string `json:"department"`
	Enrolled   int    `json:"enrolled"`
}

// EnrollmentAnalysis aggregates the enrollment history for the dashboard.
type EnrollmentAnalysis struct {
	Years              []YearTotals      `json:"years"`
	GrowthRatePct      float64           `json:"growth_rate_pct"`
	LatestYear         int               `json:"latest_year"`
	LatestTerm         string            `json:"latest_term"`
	AdmissionRatePct   float64           `json:"admission_rate_pct"`
	YieldRatePct       float64           `json:"yield_rate_pct"`
	LatestRetention    float64           `json:"latest_retention_pct"`
	LatestSatisfaction float64           `json:"latest_satisfaction_pct"`
	Departments        []DepartmentTotal `json:"departments"`
}

// AnalyzeEnrollment computes yearly totals, application growth from the
// first to the last year, the latest-term admission funnel and cumulative
// department enrollment.
func AnalyzeEnrollment(records []models.EnrollmentRecord) (*EnrollmentAnalysis, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no enrollment records to analyze")
	}

	byYear := map[int]*YearTotals{}
	departments := map[string]int{}
	latest := records[0]

	for _, rec := range records {
		totals := byYear[rec.Year]
		if totals == nil {
			totals = &YearTotals{Year: rec.Year}
			byYear[rec.Year] = totals
		}
		totals.Applications += rec.Applications
		totals.Admitted += rec.Admitted
		totals.Enrolled += rec.Enrolled

		departments["Engineering"] += rec.EngineeringEnrolled
		departments["Business"] += rec.BusinessEnrolled
		departments["Arts"] += rec.ArtsEnrolled
		departments["Science"] += rec.ScienceEnrolled

		if rec.Year > latest.Year || (rec.Year == latest.Year && rec.Term == "Fall") {
			latest = rec
		}
	}

	analysis := &EnrollmentAnalysis{
		LatestYear:         latest.Year,
		LatestTerm:         latest.Term,
		LatestRetention:    latest.RetentionRate,
		LatestSatisfaction: latest.StudentSatisfaction,
	}

	for _, totals := range byYear {
		analysis.Years = append(analysis.Years, *totals)
	}
	sort.Slice(analysis.Years, func(i, j int) bool {
		return analysis.Years[i].Year < analysis.Years[j].Year
	})

	first, last := analysis.Years[0], analysis.Years[len(analysis.Years)-1]
	if first.Applications > 0 {
		analysis.GrowthRatePct = round1(float64(last.Applications-first.Applications) / float64(first.Applications) * 100)
	}

	if latest.Applications > 0 {
		analysis.AdmissionRatePct = round1(float64(latest.Admitted) / float64(latest.Applications) * 100)
	}
	if latest.Admitted > 0 {
		analysis.YieldRatePct = round1(float64(latest.Enrolled) / float64(latest.Admitted) * 100)
	}

	for _, dept := range []string{"Engineering", "Business", "Arts", "Science"} {
		analysis.Departments = append(analysis.Departments, DepartmentTotal{
			Department: dept,
			Enrolled:   departments[dept],
		})
	}

	return analysis, nil
}
