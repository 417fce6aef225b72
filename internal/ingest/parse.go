package ingest

import (
	"strconv"
	"strings"
	"time"
)

// timestampFormats is the ordered list of layouts tried against raw date/time
// text. The exports mix "M/D/YYYY, H:MM AM/PM" and the same without the comma,
// plus occasional 24-hour and ISO forms.
var timestampFormats = []string{
	"1/2/2006, 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006, 15:04",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses raw date/time text in the plant's local timezone.
// It returns the zero time and false when no layout matches; callers keep
// such rows but exclude them from time-based computation.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampFormats {
		if ts, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// CombineTimestamp joins separate date and time columns before parsing.
func CombineTimestamp(date, clock string, loc *time.Location) (time.Time, bool) {
	return ParseTimestamp(strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
}

// ParseNumber coerces numeric text to a float, treating currency symbols and
// thousands separators as noise. Non-numeric text coerces to zero rather than
// failing the row.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
