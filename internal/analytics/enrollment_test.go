package analytics

import (
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

func TestAnalyzeEnrollmentEmpty(t *testing.T) {
	if _, err := AnalyzeEnrollment(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestAnalyzeEnrollment(t *testing.T) {
	records := []models.EnrollmentRecord{
		{
			Year: 2020, Term: "Spring", Applications: 1000, Admitted: 650, Enrolled: 280,
			RetentionRate: 85, StudentSatisfaction: 78,
			EngineeringEnrolled: 98, BusinessEnrolled: 78, ArtsEnrolled: 61, ScienceEnrolled: 42,
		},
		{
			Year: 2020, Term: "Fall", Applications: 1300, Admitted: 845, Enrolled: 364,
			RetentionRate: 86, StudentSatisfaction: 79,
			EngineeringEnrolled: 127, BusinessEnrolled: 101, ArtsEnrolled: 80, ScienceEnrolled: 54,
		},
		{
			Year: 2021, Term: "Spring", Applications: 1100, Admitted: 700, Enrolled: 300,
			RetentionRate: 87, StudentSatisfaction: 80,
			EngineeringEnrolled: 105, BusinessEnrolled: 84, ArtsEnrolled: 66, ScienceEnrolled: 45,
		},
		{
			Year: 2021, Term: "Fall", Applications: 1400, Admitted: 900, Enrolled: 400,
			RetentionRate: 88, StudentSatisfaction: 81,
			EngineeringEnrolled: 140, BusinessEnrolled: 112, ArtsEnrolled: 88, ScienceEnrolled: 60,
		},
	}

	analysis, err := AnalyzeEnrollment(records)
	if err != nil {
		t.Fatalf("AnalyzeEnrollment returned error: %v", err)
	}

	if len(analysis.Years) != 2 {
		t.Fatalf("Expected 2 years, got %d", len(analysis.Years))
	}
	if analysis.Years[0].Year != 2020 || analysis.Years[0].Applications != 2300 {
		t.Errorf("Expected 2020 with 2300 applications, got %+v", analysis.Years[0])
	}
	if analysis.Years[1].Applications != 2500 {
		t.Errorf("Expected 2021 with 2500 applications, got %+v", analysis.Years[1])
	}

	// (2500 - 2300) / 2300 * 100 = 8.7 after rounding.
	if analysis.GrowthRatePct != 8.7 {
		t.Errorf("Expected growth 8.7%%, got %f", analysis.GrowthRatePct)
	}

	if analysis.LatestYear != 2021 || analysis.LatestTerm != "Fall" {
		t.Errorf("Expected latest 2021 Fall, got %d %s", analysis.LatestYear, analysis.LatestTerm)
	}
	// 900/1400 and 400/900.
	if analysis.AdmissionRatePct != 64.3 {
		t.Errorf("Expected admission rate 64.3%%, got %f", analysis.AdmissionRatePct)
	}
	if analysis.YieldRatePct != 44.4 {
		t.Errorf("Expected yield rate 44.4%%, got %f", analysis.YieldRatePct)
	}
	if analysis.LatestRetention != 88 || analysis.LatestSatisfaction != 81 {
		t.Errorf("Expected latest rates 88/81, got %f/%f", analysis.LatestRetention, analysis.LatestSatisfaction)
	}

	wantDepartments := map[string]int{
		"Engineering": 470,
		"Business":    375,
		"Arts":        295,
		"Science":     201,
	}
	if len(analysis.Departments) != 4 {
		t.Fatalf("Expected 4 departments, got %d", len(analysis.Departments))
	}
	for _, dept := range analysis.Departments {
		if dept.Enrolled != wantDepartments[dept.Department] {
			t.Errorf("Department %s: expected %d, got %d",
				dept.Department, wantDepartments[dept.Department], dept.Enrolled)
		}
	}
}

func TestAnalyzeEnrollmentGenerated(t *testing.T) {
	records := datagen.GenerateEnrollment(datagen.NewRand(datagen.DefaultSeed))
	analysis, err := AnalyzeEnrollment(records)
	if err != nil {
		t.Fatalf("AnalyzeEnrollment returned error: %v", err)
	}

	if len(analysis.Years) != 10 {
		t.Errorf("Expected 10 years, got %d", len(analysis.Years))
	}
	if analysis.LatestYear != 2024 || analysis.LatestTerm != "Fall" {
		t.Errorf("Expected latest 2024 Fall, got %d %s", analysis.LatestYear, analysis.LatestTerm)
	}
	if analysis.GrowthRatePct <= 0 {
		t.Errorf("Expected positive application growth, got %f", analysis.GrowthRatePct)
	}
	if analysis.AdmissionRatePct <= 0 || analysis.AdmissionRatePct >= 100 {
		t.Errorf("Admission rate %f out of range", analysis.AdmissionRatePct)
	}
	if analysis.YieldRatePct <= 0 || analysis.YieldRatePct >= 100 {
		t.Errorf("Yield rate %f out of range", analysis.YieldRatePct)
	}
	for _, dept := range analysis.Departments {
		if dept.Enrolled <= 0 {
			t.Errorf("Department %s: expected positive total, got %d", dept.Department, dept.Enrolled)
		}
	}
}
