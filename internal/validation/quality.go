package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// CategoricalStats describes a text column.
type CategoricalStats struct {
	UniqueValues int    `json:"unique_values"`
	MostCommon   string `json:"most_common"`
}

// QualityReport captures structural quality metrics for a table.
type QualityReport struct {
	Error             string                                `json:"error,omitempty"`
	TotalRows         int                                   `json:"total_rows"`
	TotalColumns      int                                   `json:"total_columns"`
	MissingValues     map[string]int                        `json:"missing_values,omitempty"`
	MissingPercentage map[string]float64                    `json:"missing_percentage,omitempty"`
	DuplicatedRows    int                                   `json:"duplicated_rows"`
	MemoryUsageMB     float64                               `json:"memory_usage_mb"`
	DataTypes         map[string]string                     `json:"data_types,omitempty"`
	NumericStats      map[string]analytics.DescriptiveStats `json:"numeric_stats,omitempty"`
	CategoricalStats  map[string]CategoricalStats           `json:"categorical_stats,omitempty"`
}

// BuildQualityReport computes per-column missing counts, duplicate rows, an
// approximate memory footprint, inferred column types and per-column
// summaries. An empty or nil table produces a report holding only an error.
func BuildQualityReport(t *models.Table) *QualityReport {
	if t == nil || t.NumRows() == 0 {
		return &QualityReport{Error: "Table is empty"}
	}

	report := &QualityReport{
		TotalRows:         t.NumRows(),
		TotalColumns:      t.NumCols(),
		MissingValues:     make(map[string]int, t.NumCols()),
		MissingPercentage: make(map[string]float64, t.NumCols()),
		DuplicatedRows:    countDuplicateRows(t),
		MemoryUsageMB:     approxMemoryMB(t),
		DataTypes:         make(map[string]string, t.NumCols()),
	}

	for _, col := range t.Columns {
		cells := t.Column(col)

		missing := 0
		for _, cell := range cells {
			if cell == "" {
				missing++
			}
		}
		report.MissingValues[col] = missing
		report.MissingPercentage[col] = round2(float64(missing) / float64(t.NumRows()) * 100)

		values, valid := t.FloatColumn(col)
		if numeric, integer := classifyColumn(cells, valid); numeric {
			if missing == 0 && integer {
				report.DataTypes[col] = "int64"
			} else {
				report.DataTypes[col] = "float64"
			}
			var sample []float64
			for i, ok := range valid {
				if ok {
					sample = append(sample, values[i])
				}
			}
			if report.NumericStats == nil {
				report.NumericStats = make(map[string]analytics.DescriptiveStats)
			}
			report.NumericStats[col] = analytics.Describe(sample)
		} else {
			report.DataTypes[col] = "object"
			if report.CategoricalStats == nil {
				report.CategoricalStats = make(map[string]CategoricalStats)
			}
			report.CategoricalStats[col] = describeCategorical(cells)
		}
	}

	return report
}

// classifyColumn reports whether every present cell parses as a number, and
// whether all of those numbers are integers.
func classifyColumn(cells []string, valid []bool) (numeric, integer bool) {
	present, parsed := 0, 0
	integer = true
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		present++
		if valid[i] {
			parsed++
			if _, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64); err != nil {
				integer = false
			}
		}
	}
	if present == 0 || parsed != present {
		return false, false
	}
	return true, integer
}

func describeCategorical(cells []string) CategoricalStats {
	counts := map[string]int{}
	for _, cell := range cells {
		if cell != "" {
			counts[cell]++
		}
	}

	mode, best := "", 0
	for value, n := range counts {
		if n > best || (n == best && value < mode) {
			mode, best = value, n
		}
	}
	return CategoricalStats{UniqueValues: len(counts), MostCommon: mode}
}

// countDuplicateRows counts rows identical to an earlier row.
func countDuplicateRows(t *models.Table) int {
	seen := make(map[string]bool, t.NumRows())
	duplicates := 0
	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			duplicates++
		} else {
			seen[key] = true
		}
	}
	return duplicates
}

// approxMemoryMB estimates the in-memory footprint: string payload plus
// header overhead per cell and per row.
func approxMemoryMB(t *models.Table) float64 {
	const stringHeader = 16
	const sliceHeader = 24

	bytes := sliceHeader
	for _, col := range t.Columns {
		bytes += stringHeader + len(col)
	}
	for _, row := range t.Rows {
		bytes += sliceHeader
		for _, cell := range row {
			bytes += stringHeader + len(cell)
		}
	}
	return float64(bytes) / 1024 / 1024
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
