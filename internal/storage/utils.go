package storage

import (
	"path"
	"time"
)

// ReportFolder returns the storage folder for a report generated at the
// given time. The layout groups reports by date and keeps the full
// timestamp in the leaf so lexical order matches chronological order:
// reports/YYYY/MM/DD/DashboardReport-YYYY-MM-DD-HH-MM-SS
func ReportFolder(timestamp time.Time) string {
	ts := timestamp.UTC()
	return "reports/" + ts.Format("2006/01/02") + "/DashboardReport-" + ts.Format("2006-01-02-15-04-05")
}

var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".csv":  "text/csv",
	".md":   "text/markdown",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// ContentType returns the MIME type for a stored file based on its
// extension, defaulting to application/octet-stream.
func ContentType(filename string) string {
	if ct, ok := contentTypes[path.Ext(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}
