package storage

import (
	"fmt"
	"strings"
	"time"
)

// reportFolderPrefix names report folders so listings can tell them
// apart from other artifacts.
const reportFolderPrefix = "ChartReport-"

// GenerateReportFolderPath generates a consistent folder path for
// reports. Format: YYYY/MM/DD/ChartReport-YYYY-MM-DD-HH-MM-SS
func GenerateReportFolderPath(timestamp time.Time) string {
	return fmt.Sprintf("%04d/%02d/%02d/%s%04d-%02d-%02d-%02d-%02d-%02d",
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		reportFolderPrefix,
		timestamp.Year(), timestamp.Month(), timestamp.Day(),
		timestamp.Hour(), timestamp.Minute(), timestamp.Second())
}

// IsReportFolder reports whether a path element names a report folder.
func IsReportFolder(name string) bool {
	return strings.HasPrefix(name, reportFolderPrefix)
}

// GetContentType determines the MIME content type from the file
// extension.
func GetContentType(filename string) string {
	switch {
	case strings.HasSuffix(filename, ".json"):
		return "application/json"
	case strings.HasSuffix(filename, ".txt"):
		return "text/plain"
	case strings.HasSuffix(filename, ".html"):
		return "text/html"
	case strings.HasSuffix(filename, ".css"):
		return "text/css"
	case strings.HasSuffix(filename, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filename, ".png"):
		return "image/png"
	case strings.HasSuffix(filename, ".jpg"), strings.HasSuffix(filename, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(filename, ".svg"):
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
