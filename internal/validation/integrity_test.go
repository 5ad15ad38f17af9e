package validation

import (
	"fmt"
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

func happinessFixture(rows ...[]string) *models.Table {
	table := models.NewTable([]string{"Country", "Happiness_score", "GDP_per_capita"})
	for _, row := range rows {
		table.AppendRow(row)
	}
	return table
}

func TestCheckHappinessDataClean(t *testing.T) {
	table := happinessFixture(
		[]string{"Finland", "7.8", "1.9"},
		[]string{"Denmark", "7.6", "1.9"},
	)
	if issues := CheckHappinessData(table); len(issues) != 0 {
		t.Errorf("Expected no issues, got %v", issues)
	}
}

func TestCheckHappinessDataFindings(t *testing.T) {
	table := happinessFixture(
		[]string{"Finland", "12.0", "1.9"},
		[]string{"Denmark", "-1", "1.9"},
		[]string{"Iceland", "7.5", "-0.4"},
		[]string{"", "7.0", "1.2"},
	)

	issues := CheckHappinessData(table)
	want := []string{
		"Found 2 rows with invalid happiness scores (should be 0-10)",
		"Found 1 rows with negative GDP values",
		"Found 1 rows with missing country names",
	}
	if len(issues) != len(want) {
		t.Fatalf("Expected %d issues, got %d: %v", len(want), len(issues), issues)
	}
	for i, msg := range want {
		if issues[i] != msg {
			t.Errorf("Issue %d: expected %q, got %q", i, msg, issues[i])
		}
	}
}

func TestCheckHappinessDataSkipsUnparseableCells(t *testing.T) {
	table := happinessFixture(
		[]string{"Finland", "not-a-number", "1.9"},
	)
	if issues := CheckHappinessData(table); len(issues) != 0 {
		t.Errorf("Expected unparseable cells to be skipped, got %v", issues)
	}
}

func universityFixture(rows ...[]string) *models.Table {
	table := models.NewTable([]string{
		"Year", "Term", "Applications", "Admitted", "Enrolled",
		"Retention Rate (%)", "Student Satisfaction (%)",
	})
	for _, row := range rows {
		table.AppendRow(row)
	}
	return table
}

func TestCheckUniversityDataClean(t *testing.T) {
	table := universityFixture(
		[]string{"2020", "Fall", "3000", "1950", "840", "88.5", "82.1"},
		[]string{"2021", "Spring", "3100", "2000", "860", "89.0", "83.0"},
	)
	if issues := CheckUniversityData(table); len(issues) != 0 {
		t.Errorf("Expected no issues, got %v", issues)
	}
}

func TestCheckUniversityDataFindings(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{
			name: "year too old",
			row:  []string{"1995", "Fall", "100", "60", "30", "85", "80"},
			want: "Found 1 rows with invalid years",
		},
		{
			name: "negative enrolled",
			row:  []string{"2020", "Fall", "100", "60", "-5", "85", "80"},
			want: "Found 1 rows with negative Enrolled",
		},
		{
			name: "admitted above applications",
			row:  []string{"2020", "Fall", "100", "150", "30", "85", "80"},
			want: "Found 1 rows with illogical enrollment progression",
		},
		{
			name: "enrolled above admitted",
			row:  []string{"2020", "Fall", "100", "60", "70", "85", "80"},
			want: "Found 1 rows with illogical enrollment progression",
		},
		{
			name: "retention above 100",
			row:  []string{"2020", "Fall", "100", "60", "30", "150", "80"},
			want: "Found 1 rows with invalid Retention Rate (%) (should be 0-100)",
		},
		{
			name: "negative satisfaction",
			row:  []string{"2020", "Fall", "100", "60", "30", "85", "-10"},
			want: "Found 1 rows with invalid Student Satisfaction (%) (should be 0-100)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckUniversityData(universityFixture(tt.row))
			found := false
			for _, issue := range issues {
				if issue == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected issue %q, got %v", tt.want, issues)
			}
		})
	}
}

func TestGeneratedDataPassesIntegrityChecks(t *testing.T) {
	enrollment := models.EnrollmentTable(datagen.GenerateEnrollment(datagen.NewRand(datagen.DefaultSeed)))
	if issues := CheckUniversityData(enrollment); len(issues) != 0 {
		t.Errorf("Expected generated enrollment data to pass, got %v", issues)
	}

	happiness := models.HappinessTable(datagen.GenerateHappiness(datagen.NewRand(datagen.DefaultSeed)))
	if issues := CheckHappinessData(happiness); len(issues) != 0 {
		t.Errorf("Expected generated happiness data to pass, got %v", issues)
	}

	for _, hub := range datagen.Hubs() {
		flights := datagen.GenerateFlights(datagen.NewRand(datagen.FlightSeed(hub)), hub)
		if len(flights) == 0 {
			t.Errorf("Expected flights for hub %s", hub)
		}
	}
}

func TestIntegrityMessagesCountRows(t *testing.T) {
	var rows [][]string
	for i := 0; i < 3; i++ {
		rows = append(rows, []string{fmt.Sprintf("Country%d", i), "11", "1.0"})
	}
	issues := CheckHappinessData(happinessFixture(rows...))
	if len(issues) != 1 || issues[0] != "Found 3 rows with invalid happiness scores (should be 0-10)" {
		t.Errorf("Expected aggregated count of 3, got %v", issues)
	}
}
