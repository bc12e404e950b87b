// Package csv builds the comma-delimited export documents served to the
// admin's browser. Fields containing a comma, double quote or newline are
// wrapped in quotes with internal quotes doubled; rows are joined with \n.
package csv

import (
	"strings"
	"time"
)

var filenameSanitizer = strings.NewReplacer(":", "-", ".", "-")

func needsQuoting(field string) bool {
	return strings.ContainsAny(field, ",\"\n\r")
}

// Escape renders one field according to the export quoting rules.
func Escape(field string) string {
	if !needsQuoting(field) {
		return field
	}
	return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
}

// Build joins a header row and data rows into a complete CSV document.
func Build(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	for i, field := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Escape(field))
	}
}

// Filename produces "<resource>_<timestamp>.csv" with the colons and dots of
// the RFC3339 timestamp replaced by dashes so it is safe as a download name.
func Filename(resource string, now time.Time) string {
	return resource + "_" + filenameSanitizer.Replace(now.UTC().Format(time.RFC3339)) + ".csv"
}
