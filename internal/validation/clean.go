package validation

import (
	"strconv"
	"strings"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// placeholderValues are tokens treated as missing data in text columns.
// Rows carrying one of them are removed outright.
var placeholderValues = []string{"xx", "XX", "N/A", "n/a", "NULL", "null", ""}

// CleanTable returns a cleaned copy of the table. Fully empty rows and rows
// with a placeholder token in a text column are dropped; cells in the listed
// numeric columns are coerced to canonical float text (decimal commas
// tolerated), with unparseable values left as empty cells. The input table
// is not modified, and cleaning an already clean table is a no-op.
func CleanTable(t *models.Table, numericColumns []string) *models.Table {
	if t == nil {
		return nil
	}

	numeric := make(map[string]bool, len(numericColumns))
	for _, col := range numericColumns {
		numeric[col] = true
	}

	cleaned := models.NewTable(append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		if emptyRow(row) {
			continue
		}
		if hasPlaceholder(t.Columns, row, numeric) {
			continue
		}

		out := make([]string, len(t.Columns))
		copy(out, row)
		for i, col := range t.Columns {
			if numeric[col] {
				out[i] = coerceNumeric(out[i])
			}
		}
		cleaned.Rows = append(cleaned.Rows, out)
	}

	logger.Infof("Data cleaning: %d -> %d rows (%d removed)",
		t.NumRows(), cleaned.NumRows(), t.NumRows()-cleaned.NumRows())
	return cleaned
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func hasPlaceholder(columns, row []string, numeric map[string]bool) bool {
	for i, col := range columns {
		if numeric[col] || i >= len(row) {
			continue
		}
		for _, p := range placeholderValues {
			if row[i] == p {
				return true
			}
		}
	}
	return false
}

// coerceNumeric normalizes a numeric cell. The source happiness report uses
// decimal commas, so commas become dots before parsing.
func coerceNumeric(v string) string {
	s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	return models.FormatFloat(f)
}
