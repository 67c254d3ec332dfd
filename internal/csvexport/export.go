// Package csvexport renders tabular exports. Every field is wrapped in
// double quotes with embedded quotes doubled, so commas, quotes and
// newlines inside values survive a round trip through any standard CSV
// parser.
package csvexport

import (
	"errors"
	"strings"
)

// ErrNoData is returned when there are no rows to export.
var ErrNoData = errors.New("no data to export")

// Export renders the header line followed by one line per row, fields in
// header order, lines joined with "\n". Rows missing a column emit an empty
// quoted field.
func Export(headers []string, rows []map[string]string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	writeRecord(&b, headers, func(h string) string { return h })
	for _, row := range rows {
		b.WriteByte('\n')
		writeRecord(&b, headers, func(h string) string { return row[h] })
	}
	return b.String(), nil
}

func writeRecord(b *strings.Builder, headers []string, value func(string) string) {
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(value(h), `"`, `""`))
		b.WriteByte('"')
	}
}
