package validation

import (
	"math"
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

func TestBuildQualityReportEmptyTable(t *testing.T) {
	tests := []struct {
		name  string
		table *models.Table
	}{
		{"nil table", nil},
		{"no rows", models.NewTable([]string{"a"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildQualityReport(tt.table)
			if report.Error == "" {
				t.Error("Expected error for empty table")
			}
			if report.TotalRows != 0 {
				t.Errorf("Expected zero rows, got %d", report.TotalRows)
			}
		})
	}
}

func TestBuildQualityReportCounts(t *testing.T) {
	table := models.NewTable([]string{"name", "score"})
	table.AppendRow([]string{"a", "1"})
	table.AppendRow([]string{"b", "3"})
	table.AppendRow([]string{"a", "1"})
	table.AppendRow([]string{"c", ""})

	report := BuildQualityReport(table)

	if report.TotalRows != 4 || report.TotalColumns != 2 {
		t.Errorf("Expected 4x2 table, got %dx%d", report.TotalRows, report.TotalColumns)
	}
	if report.MissingValues["score"] != 1 {
		t.Errorf("Expected 1 missing score, got %d", report.MissingValues["score"])
	}
	if report.MissingPercentage["score"] != 25 {
		t.Errorf("Expected 25%% missing, got %f", report.MissingPercentage["score"])
	}
	if report.MissingValues["name"] != 0 {
		t.Errorf("Expected no missing names, got %d", report.MissingValues["name"])
	}
	if report.DuplicatedRows != 1 {
		t.Errorf("Expected 1 duplicated row, got %d", report.DuplicatedRows)
	}
	if report.MemoryUsageMB <= 0 {
		t.Errorf("Expected positive memory estimate, got %f", report.MemoryUsageMB)
	}
}

func TestBuildQualityReportTypes(t *testing.T) {
	table := models.NewTable([]string{"name", "year", "ratio", "mixed"})
	table.AppendRow([]string{"a", "2020", "1.5", "1"})
	table.AppendRow([]string{"b", "2021", "2.5", "two"})

	report := BuildQualityReport(table)

	tests := []struct {
		column string
		want   string
	}{
		{"name", "object"},
		{"year", "int64"},
		{"ratio", "float64"},
		{"mixed", "object"},
	}
	for _, tt := range tests {
		if got := report.DataTypes[tt.column]; got != tt.want {
			t.Errorf("Column %s: expected type %s, got %s", tt.column, tt.want, got)
		}
	}

	if _, ok := report.NumericStats["year"]; !ok {
		t.Error("Expected numeric stats for year column")
	}
	if _, ok := report.CategoricalStats["mixed"]; !ok {
		t.Error("Expected categorical stats for mixed column")
	}
}

func TestBuildQualityReportNumericStats(t *testing.T) {
	table := models.NewTable([]string{"v"})
	for _, cell := range []string{"1", "2", "3", "4", ""} {
		table.AppendRow([]string{cell})
	}

	report := BuildQualityReport(table)
	stats, ok := report.NumericStats["v"]
	if !ok {
		t.Fatal("Expected numeric stats for v")
	}

	if stats.Count != 4 {
		t.Errorf("Expected count 4, got %d", stats.Count)
	}
	if stats.Mean != 2.5 {
		t.Errorf("Expected mean 2.5, got %f", stats.Mean)
	}
	if stats.Min != 1 || stats.Max != 4 {
		t.Errorf("Expected range [1,4], got [%f,%f]", stats.Min, stats.Max)
	}
	if stats.P25 != 1.75 || stats.Median != 2.5 || stats.P75 != 3.25 {
		t.Errorf("Expected quartiles 1.75/2.5/3.25, got %f/%f/%f", stats.P25, stats.Median, stats.P75)
	}
	wantStd := math.Sqrt(5.0 / 3.0)
	if math.Abs(stats.Std-wantStd) > 1e-12 {
		t.Errorf("Expected std %f, got %f", wantStd, stats.Std)
	}
}

func TestBuildQualityReportCategoricalStats(t *testing.T) {
	table := models.NewTable([]string{"term"})
	for _, cell := range []string{"Fall", "Spring", "Fall", "Summer", ""} {
		table.AppendRow([]string{cell})
	}

	report := BuildQualityReport(table)
	stats, ok := report.CategoricalStats["term"]
	if !ok {
		t.Fatal("Expected categorical stats for term")
	}
	if stats.UniqueValues != 3 {
		t.Errorf("Expected 3 unique values, got %d", stats.UniqueValues)
	}
	if stats.MostCommon != "Fall" {
		t.Errorf("Expected most common Fall, got %s", stats.MostCommon)
	}
}
