package validation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// structureSampleRows bounds how much of a file structure validation reads.
const structureSampleRows = 5

// ValidateCSVStructure checks that a CSV file exists, parses, contains data
// and carries the expected columns. It never returns an error: problems are
// reported as (false, reason) so callers can surface them directly.
func ValidateCSVStructure(path string, expectedColumns []string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, fmt.Sprintf("File not found: %s", path)
		}
		return false, fmt.Sprintf("Unexpected error: %v", err)
	}
	if info.Size() == 0 {
		return false, "File is empty"
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Sprintf("Unexpected error: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err == io.EOF {
		return false, "CSV file is empty or corrupted"
	}
	if err != nil {
		return false, readFailure(err)
	}

	dataRows := 0
	for dataRows < structureSampleRows {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return false, readFailure(err)
		}
		dataRows++
	}
	if dataRows == 0 {
		return false, "CSV file contains no data"
	}

	if len(expectedColumns) > 0 {
		present := make(map[string]bool, len(header))
		for i, col := range header {
			if i == 0 {
				col = strings.TrimPrefix(col, "\uFEFF")
			}
			present[col] = true
		}
		var missing []string
		for _, col := range expectedColumns {
			if !present[col] {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return false, fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", "))
		}
	}

	return true, "File structure is valid"
}

func readFailure(err error) string {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Sprintf("CSV parsing error: %v", err)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
