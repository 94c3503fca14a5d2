// Package csvio implements the CSV interchange format for session lists:
// header id,startUtc,endUtc,notes, one row per session, RFC 4180 quoting.
package csvio

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

// Header is the fixed CSV header row.
var Header = []string{"id", "startUtc", "endUtc", "notes"}

// Encode renders the sessions as CSV text in list order. Absent end
// instants and notes become empty fields.
func Encode(sessions []domain.Session) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write(Header)
	for _, s := range sessions {
		end := ""
		if s.EndUTC != nil {
			end = timeconv.FormatInstant(*s.EndUTC)
		}
		_ = w.Write([]string{s.ID, timeconv.FormatInstant(s.StartUTC), end, s.Notes})
	}
	w.Flush()
	return b.String()
}

// ExportFilename returns the dated export name for the given local date,
// e.g. zeiterfassung-export-2024-01-31.csv.
func ExportFilename(now time.Time, loc *time.Location) string {
	return "zeiterfassung-export-" + timeconv.LocalDate(now, loc) + ".csv"
}
