package models

import "time"

// DatasetKind identifies one of the three data domains
type DatasetKind string

const (
	KindFlights    DatasetKind = "flights"
	KindEnrollment DatasetKind = "enrollment"
	KindHappiness  DatasetKind = "happiness"
)

// Origin tags where a dataset's rows came from. The presentation layer must
// branch on it: synthetic tables are never passed off as real data.
type Origin string

const (
	// OriginReal marks data loaded from an actual source file or URL
	OriginReal Origin = "real"
	// OriginSynthetic marks generated stand-in data
	OriginSynthetic Origin = "synthetic"
)

// Dataset is a loaded table together with its provenance
type Dataset struct {
	Kind       DatasetKind `json:"kind"`
	Origin     Origin      `json:"origin"`
	Table      *Table      `json:"table"`
	SourcePath string      `json:"source_path,omitempty"` // File path or URL for real data
	LoadedAt   time.Time   `json:"loaded_at"`
}

// IsSynthetic reports whether the dataset was generated rather than loaded
func (d *Dataset) IsSynthetic() bool {
	return d.Origin == OriginSynthetic
}

// IsEmpty reports whether the dataset carries no rows
func (d *Dataset) IsEmpty() bool {
	return d.Table == nil || d.Table.NumRows() == 0
}
