package domain

import "time"

// DateLayout is the wire format for date-only values (expiry and
// transaction dates).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date in UTC so day arithmetic is
// independent of the server's local zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// FormatDate renders a date-only value in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
