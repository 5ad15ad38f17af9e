package models

import "strconv"

// columnReader resolves cells by column name for one table, tolerating
// absent columns so record conversion works for both the synthetic schema
// and real source files with fewer columns.
type columnReader struct {
	table   *Table
	indexes map[string]int
}

func newColumnReader(t *Table) *columnReader {
	r := &columnReader{table: t, indexes: make(map[string]int, len(t.Columns))}
	for i, col := range t.Columns {
		r.indexes[col] = i
	}
	return r
}

func (r *columnReader) cell(row []string, col string) string {
	idx, ok := r.indexes[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (r *columnReader) float(row []string, col string) float64 {
	v, err := strconv.ParseFloat(r.cell(row, col), 64)
	if err != nil {
		return 0
	}
	return v
}

func (r *columnReader) int(row []string, col string) int {
	// Happiness ranks arrive as float text after numeric coercion.
	return int(r.float(row, col))
}

func (r *columnReader) bool(row []string, col string) bool {
	v, err := strconv.ParseBool(r.cell(row, col))
	if err != nil {
		return false
	}
	return v
}

// FlightRecords converts a flight table back into typed records. Cells
// that fail to parse become zero values.
func FlightRecords(t *Table) []FlightRecord {
	if t == nil {
		return nil
	}
	r := newColumnReader(t)
	records := make([]FlightRecord, 0, t.NumRows())
	for _, row := range t.Rows {
		records = append(records, FlightRecord{
			SourceAirport:      r.cell(row, "source_airport"),
			DestinationAirport: r.cell(row, "destination_airport"),
			DestinationName:    r.cell(row, "destination_name"),
			DestinationLat:     r.float(row, "destination_lat"),
			DestinationLon:     r.float(row, "destination_lon"),
			Airline:            r.cell(row, "airline"),
			FlightHour:         r.int(row, "flight_hour"),
			Domestic:           r.bool(row, "domestic"),
			Region:             r.cell(row, "region"),
			Distance:           r.float(row, "distance"),
		})
	}
	return records
}

// EnrollmentRecords converts an enrollment table back into typed records.
func EnrollmentRecords(t *Table) []EnrollmentRecord {
	if t == nil {
		return nil
	}
	r := newColumnReader(t)
	records := make([]EnrollmentRecord, 0, t.NumRows())
	for _, row := range t.Rows {
		records = append(records, EnrollmentRecord{
			Year:                r.int(row, "Year"),
			Term:                r.cell(row, "Term"),
			Applications:        r.int(row, "Applications"),
			Admitted:            r.int(row, "Admitted"),
			Enrolled:            r.int(row, "Enrolled"),
			RetentionRate:       r.float(row, "Retention Rate (%)"),
			StudentSatisfaction: r.float(row, "Student Satisfaction (%)"),
			EngineeringEnrolled: r.int(row, "Engineering Enrolled"),
			BusinessEnrolled:    r.int(row, "Business Enrolled"),
			ArtsEnrolled:        r.int(row, "Arts Enrolled"),
			ScienceEnrolled:     r.int(row, "Science Enrolled"),
		})
	}
	return records
}

// HappinessRecords converts a happiness table back into typed records.
// Real report files carry no Region column; those records get an empty
// region.
func HappinessRecords(t *Table) []HappinessRecord {
	if t == nil {
		return nil
	}
	r := newColumnReader(t)
	records := make([]HappinessRecord, 0, t.NumRows())
	for _, row := range t.Rows {
		records = append(records, HappinessRecord{
			Rank:                  r.int(row, "RANK"),
			Country:               r.cell(row, "Country"),
			HappinessScore:        r.float(row, "Happiness_score"),
			GDPPerCapita:          r.float(row, "GDP_per_capita"),
			SocialSupport:         r.float(row, "Social_support"),
			HealthyLifeExpectancy: r.float(row, "Healthy_life_expectancy"),
			Freedom:               r.float(row, "Freedom"),
			Generosity:            r.float(row, "Generosity"),
			Corruption:            r.float(row, "Corruption"),
			Region:                r.cell(row, "Region"),
		})
	}
	return records
}
