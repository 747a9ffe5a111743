package view

import (
	"strconv"
	"strings"
	"time"
)

const (
	notAvailable  = "N/A"
	noTimes       = "Not available"
	dateTimeShown = "1/2/2006, 3:04:05 PM"
	dateShown     = "1/2/2006"
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime reads the API's ISO strings. Zoneless values are local time.
func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Local(), true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders an ISO date-time for display, or returns s as-is
// when it does not parse.
func FormatDateTime(s string) string {
	if t, ok := parseTime(s); ok {
		return t.Format(dateTimeShown)
	}
	return s
}

// FormatDate renders the date part only.
func FormatDate(s string) string {
	if t, ok := parseTime(s); ok {
		return t.Format(dateShown)
	}
	return s
}

// FormatFee prints a fee the way the API sends it: 250 stays 250, 180.5
// stays 180.5.
func FormatFee(f float64) string {
	return "$" + strconv.FormatFloat(f, 'f', -1, 64)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
