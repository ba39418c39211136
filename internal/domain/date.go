package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used in every API response,
// e.g. "Mon Jan 05 2026".
const DateLayout = "Mon Jan 02 2006"

// dateLayouts are the input formats ParseDate accepts, most common first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	DateLayout,
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
}

// ParseDate parses a date string best-effort. Callers decide what an
// unparseable value means (substitute "now", skip a filter bound); parsing
// itself never signals more than ok/not-ok.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a time as the response calendar-date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
