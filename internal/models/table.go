package models

import (
	"strconv"
)

// Table is a flat in-memory tabular value: rows of string cells under named
// columns. It is the common currency between the CSV loader, the cleaner and
// the integrity checkers. A missing value is the empty string.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NewTable creates an empty table with the given column set
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// AppendRow adds one row. Short rows are padded with empty cells so every
// row has exactly one cell per column.
func (t *Table) AppendRow(cells []string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns all cells of the named column, or nil if it does not exist
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// FloatColumn parses the named column as float64. The second slice marks
// which cells parsed; missing or unparseable cells carry false.
func (t *Table) FloatColumn(name string) ([]float64, []bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, nil
	}
	values := make([]float64, len(t.Rows))
	ok := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err == nil {
			values[i] = v
			ok[i] = true
		}
	}
	return values, ok
}

// Clone returns a deep copy
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}

// Equal reports whether two tables have identical columns and cells
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Columns) != len(other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if other.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		for j, cell := range row {
			if other.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// FormatFloat renders a float the way tables store numeric cells
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Canonical column sets for the three domains, in generation order.
var (
	FlightColumns = []string{
		"source_airport", "destination_airport", "destination_name",
		"destination_lat", "destination_lon", "airline", "flight_hour",
		"domestic", "region", "distance",
	}

	EnrollmentColumns = []string{
		"Year", "Term", "Applications", "Admitted", "Enrolled",
		"Retention Rate (%)", "Student Satisfaction (%)",
		"Engineering Enrolled", "Business Enrolled", "Arts Enrolled",
		"Science Enrolled",
	}

	HappinessColumns = []string{
		"RANK", "Country", "Happiness_score", "GDP_per_capita",
		"Social_support", "Healthy_life_expectancy", "Freedom",
		"Generosity", "Corruption", "Region",
	}
)

// FlightTable converts flight records to the canonical tabular form
func FlightTable(records []FlightRecord) *Table {
	t := NewTable(FlightColumns)
	for _, r := range records {
		t.AppendRow([]string{
			r.SourceAirport,
			r.DestinationAirport,
			r.DestinationName,
			FormatFloat(r.DestinationLat),
			FormatFloat(r.DestinationLon),
			r.Airline,
			strconv.Itoa(r.FlightHour),
			strconv.FormatBool(r.Domestic),
			r.Region,
			FormatFloat(r.Distance),
		})
	}
	return t
}

// EnrollmentTable converts enrollment records to the canonical tabular form
func EnrollmentTable(records []EnrollmentRecord) *Table {
	t := NewTable(EnrollmentColumns)
	for _, r := range records {
		t.AppendRow([]string{
			strconv.Itoa(r.Year),
			r.Term,
			strconv.Itoa(r.Applications),
			strconv.Itoa(r.Admitted),
			strconv.Itoa(r.Enrolled),
			FormatFloat(r.RetentionRate),
			FormatFloat(r.StudentSatisfaction),
			strconv.Itoa(r.EngineeringEnrolled),
			strconv.Itoa(r.BusinessEnrolled),
			strconv.Itoa(r.ArtsEnrolled),
			strconv.Itoa(r.ScienceEnrolled),
		})
	}
	return t
}

// HappinessTable converts happiness records to the canonical tabular form
func HappinessTable(records []HappinessRecord) *Table {
	t := NewTable(HappinessColumns)
	for _, r := range records {
		t.AppendRow([]string{
			strconv.Itoa(r.Rank),
			r.Country,
			FormatFloat(r.HappinessScore),
			FormatFloat(r.GDPPerCapita),
			FormatFloat(r.SocialSupport),
			FormatFloat(r.HealthyLifeExpectancy),
			FormatFloat(r.Freedom),
			FormatFloat(r.Generosity),
			FormatFloat(r.Corruption),
			r.Region,
		})
	}
	return t
}
