// Package datecodec converts delivery dates between the DD/MM/YYYY form shown
// to suppliers and the YYYY-MM-DD form sent back with confirmations.
//
// Conversion is string reformatting, not calendar arithmetic: no day/month
// range checks are performed, so "31/02/2025" maps to "2025-02-31".
package datecodec

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ISOLayout is the calendar-date layout used in payloads.
const ISOLayout = "2006-01-02"

var (
	displayPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoPattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// timestampLayouts are tried in order when seeding from a source timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToDisplay reorders an ISO date "YYYY-MM-DD" into "DD/MM/YYYY".
// The components are used verbatim. Input that does not have exactly three
// dash-separated parts yields "".
func ToDisplay(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// FromDisplay parses "D/M/YYYY" (one or two digit day and month) and returns
// the zero-padded ISO date. ok is false when the input does not have that
// shape; callers must then keep whatever ISO value they had before.
func FromDisplay(display string) (iso string, ok bool) {
	m := displayPattern.FindStringSubmatch(display)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), true
}

// IsISODate reports whether s has the YYYY-MM-DD shape.
func IsISODate(s string) bool {
	return isoPattern.MatchString(s)
}

// LocalISODate returns the calendar date of t as seen in loc.
// The instant is shifted into loc before truncating to the date, so an
// instant late on the UTC day can land on the next local day.
func LocalISODate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(ISOLayout)
}

// SeedISODate normalizes a raw source date into an ISO date for seeding a
// ledger. Accepted inputs are display dates, ISO dates, and timestamps with
// a time of day. Timestamps without an offset are read as UTC.
func SeedISODate(raw string, loc *time.Location) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.Contains(raw, "/") {
		return FromDisplay(raw)
	}
	if IsISODate(raw) {
		return raw, true
	}
	if t, ok := ParseTimestamp(raw); ok {
		return LocalISODate(t, loc), true
	}
	return "", false
}

// ParseTimestamp reads a source timestamp with a time of day. Timestamps
// without an offset are read as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Seed returns both representations for a raw source date. When the raw
// value cannot be read the display side keeps the raw text and ISO is "".
func Seed(raw string, loc *time.Location) (display, iso string) {
	iso, ok := SeedISODate(raw, loc)
	if !ok {
		return strings.TrimSpace(raw), ""
	}
	return ToDisplay(iso), iso
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
