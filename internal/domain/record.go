package domain

import "time"

// CurrentVersion is the only supported schema version of the persisted record.
const CurrentVersion = 1

// Record is the whole persisted state: a versioned session list plus the
// user's display name. It is always read and written as a unit.
type Record struct {
	Version  int       `json:"version"`
	Sessions []Session `json:"sessions"`
	UserName string    `json:"userName"`
}

// DefaultRecord returns the empty record used on first run and when the
// persisted blob cannot be parsed.
func DefaultRecord() Record {
	return Record{
		Version:  CurrentVersion,
		Sessions: []Session{},
		UserName: "",
	}
}

// MonthRef identifies one calendar month with a display label.
type MonthRef struct {
	Year  int
	Month time.Month
	Label string
}
