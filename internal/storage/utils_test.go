package storage

import (
	"sort"
	"testing"
	"time"
)

func TestReportFolder(t *testing.T) {
	tests := []struct {
		name      string
		timestamp time.Time
		expected  string
	}{
		{
			name:      "zero padded month and day",
			timestamp: time.Date(2026, 3, 5, 9, 8, 7, 0, time.UTC),
			expected:  "reports/2026/03/05/DashboardReport-2026-03-05-09-08-07",
		},
		{
			name:      "end of year",
			timestamp: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			expected:  "reports/2025/12/31/DashboardReport-2025-12-31-23-59-59",
		},
		{
			name:      "non-UTC input converted to UTC",
			timestamp: time.Date(2026, 6, 1, 1, 30, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			expected:  "reports/2026/05/31/DashboardReport-2026-05-31-20-30-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReportFolder(tt.timestamp); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

// Listing relies on lexical order of folder names matching time order.
func TestReportFolderLexicalOrder(t *testing.T) {
	timestamps := []time.Time{
		time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 9, 59, 59, 0, time.UTC),
		time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC),
	}

	folders := make([]string, len(timestamps))
	for i, ts := range timestamps {
		folders[i] = ReportFolder(ts)
	}

	if !sort.StringsAreSorted(folders) {
		t.Errorf("Expected chronological timestamps to produce lexically sorted folders, got %v", folders)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"index.html", "text/html"},
		{"styles.css", "text/css"},
		{"charts.js", "application/javascript"},
		{"dashboard_data.json", "application/json"},
		{"university_data.csv", "text/csv"},
		{"summary.md", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"flight_routes.png", "image/png"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"spinner.gif", "image/gif"},
		{"reports/2026/03/05/DashboardReport-2026-03-05-09-08-07/index.html", "text/html"},
		{"archive.zip", "application/octet-stream"},
		{"Makefile", "application/octet-stream"},
		{"INDEX.HTML", "application/octet-stream"}, // extensions match case-sensitively
		{"", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.filename); got != tt.expected {
			t.Errorf("ContentType(%q): expected %s, got %s", tt.filename, tt.expected, got)
		}
	}
}

func BenchmarkContentType(b *testing.B) {
	names := []string{"index.html", "chart.png", "data.csv", "unknown.bin"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ContentType(names[i%len(names)])
	}
}
