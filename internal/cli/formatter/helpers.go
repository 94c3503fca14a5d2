package formatter

import (
	"time"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

// TruncID shortens a uuid to its first 8 characters for table display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// TruncNotes shortens notes to a single table cell.
func TruncNotes(notes string) string {
	if len(notes) > 40 {
		return notes[:37] + "..."
	}
	return notes
}

// SessionRow renders one session as table cells in the given zone.
func SessionRow(s domain.Session, loc *time.Location) []string {
	end := Dim("—")
	duration := Incomplete()
	if s.Complete() {
		end = timeconv.LocalClock(*s.EndUTC, loc)
		duration = aggregate.FormatDuration(s.Span())
	}
	return []string{
		TruncID(s.ID),
		timeconv.LocalDate(s.StartUTC, loc),
		timeconv.LocalClock(s.StartUTC, loc),
		end,
		duration,
		Dim(TruncNotes(s.Notes)),
	}
}

// SessionHeaders matches SessionRow's cell order.
var SessionHeaders = []string{"ID", "DATE", "START", "END", "DURATION", "NOTES"}
