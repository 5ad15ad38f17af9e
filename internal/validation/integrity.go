package validation

import (
	"fmt"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// CheckHappinessData inspects a happiness table for business-rule
// violations. It returns human-readable findings; an empty slice means the
// data passed. Cells that do not parse are skipped rather than flagged.
func CheckHappinessData(t *models.Table) []string {
	var issues []string
	if t == nil {
		return issues
	}

	if scores, valid := t.FloatColumn("Happiness_score"); valid != nil {
		n := 0
		for i, ok := range valid {
			if ok && (scores[i] < 0 || scores[i] > 10) {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with invalid happiness scores (should be 0-10)", n))
		}
	}

	if gdp, valid := t.FloatColumn("GDP_per_capita"); valid != nil {
		n := 0
		for i, ok := range valid {
			if ok && gdp[i] < 0 {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with negative GDP values", n))
		}
	}

	if t.HasColumn("Country") {
		n := 0
		for _, cell := range t.Column("Country") {
			if cell == "" {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with missing country names", n))
		}
	}

	return issues
}

// enrollmentCountColumns must form a non-increasing funnel per row.
var enrollmentCountColumns = []string{"Applications", "Admitted", "Enrolled"}

var enrollmentPercentageColumns = []string{"Retention Rate (%)", "Student Satisfaction (%)"}

// CheckUniversityData inspects an enrollment table for business-rule
// violations: implausible years, negative counts, a funnel that widens
// instead of narrowing, and percentages outside [0,100].
func CheckUniversityData(t *models.Table) []string {
	var issues []string
	if t == nil {
		return issues
	}

	if years, valid := t.FloatColumn("Year"); valid != nil {
		maxYear := float64(time.Now().Year() + 1)
		n := 0
		for i, ok := range valid {
			if ok && (years[i] < 2000 || years[i] > maxYear) {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with invalid years", n))
		}
	}

	counts := map[string][]float64{}
	validity := map[string][]bool{}
	for _, col := range enrollmentCountColumns {
		values, valid := t.FloatColumn(col)
		if valid == nil {
			continue
		}
		counts[col], validity[col] = values, valid

		n := 0
		for i, ok := range valid {
			if ok && values[i] < 0 {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with negative %s", n, col))
		}
	}

	if len(counts) == len(enrollmentCountColumns) {
		n := 0
		for i := 0; i < t.NumRows(); i++ {
			if !validity["Applications"][i] || !validity["Admitted"][i] || !validity["Enrolled"][i] {
				continue
			}
			if counts["Enrolled"][i] > counts["Admitted"][i] || counts["Admitted"][i] > counts["Applications"][i] {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with illogical enrollment progression", n))
		}
	}

	for _, col := range enrollmentPercentageColumns {
		values, valid := t.FloatColumn(col)
		if valid == nil {
			continue
		}
		n := 0
		for i, ok := range valid {
			if ok && (values[i] < 0 || values[i] > 100) {
				n++
			}
		}
		if n > 0 {
			issues = append(issues, fmt.Sprintf("Found %d rows with invalid %s (should be 0-100)", n, col))
		}
	}

	return issues
}
