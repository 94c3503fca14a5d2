// Package timeconv converts between UTC instants and local-timezone
// calendar representations. Every function takes an explicit *time.Location
// so the day and week boundaries are deterministic under test.
package timeconv

import (
	"fmt"
	"time"
)

// DateLayout is the local calendar date form used throughout (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout is the zero-padded 24-hour local clock form (HH:MM).
const ClockLayout = "15:04"

// LocalDate returns the calendar date of the instant in the given zone.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// LocalClock returns the wall-clock time of the instant in the given zone.
func LocalClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// FromLocal interprets date+clock as local wall-clock in the given zone and
// returns the equivalent UTC instant.
//
// Around DST transitions this is date-level arithmetic, not a minute-exact
// inverse of LocalDate/LocalClock: an instant converted to local fields and
// back may shift when the offset changed in between.
func FromLocal(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing local time %q %q: %w", date, clock, err)
	}
	return t.UTC(), nil
}

// ParseInstant parses an RFC3339 UTC instant. Malformed input reports
// ok=false instead of an error: callers treat it as a data-quality issue,
// not a control-flow one.
func ParseInstant(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// FormatInstant renders an instant in the RFC3339 UTC form used for
// persistence and interchange.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
