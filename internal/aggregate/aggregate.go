// Package aggregate derives time-bucketed totals and calendar groupings
// from a session snapshot. All functions are pure: they never touch the
// store and bucket by the session's local start date in the given zone.
package aggregate

import (
	"sort"
	"time"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

// DayBucket holds the sessions whose local start date equals Date.
type DayBucket struct {
	Date     string
	Sessions []domain.Session
}

// DailyTotal sums completed sessions whose local start date equals the
// reference instant's local date. Open sessions contribute zero.
func DailyTotal(sessions []domain.Session, ref time.Time, loc *time.Location) time.Duration {
	date := timeconv.LocalDate(ref, loc)
	var total time.Duration
	for _, s := range sessions {
		if s.Complete() && timeconv.LocalDate(s.StartUTC, loc) == date {
			total += s.Span()
		}
	}
	return total
}

// WeeklyTotal sums completed sessions whose local start falls in the
// Monday-start ISO week containing ref, the half-open local window
// [Monday 00:00, next Monday 00:00).
func WeeklyTotal(sessions []domain.Session, ref time.Time, loc *time.Location) time.Duration {
	monday := weekStart(ref.In(loc))
	next := monday.AddDate(0, 0, 7)

	var total time.Duration
	for _, s := range sessions {
		if !s.Complete() {
			continue
		}
		start := s.StartUTC.In(loc)
		if !start.Before(monday) && start.Before(next) {
			total += s.Span()
		}
	}
	return total
}

// MonthlyTotal sums completed sessions whose local start lands in the given
// calendar year and month.
func MonthlyTotal(sessions []domain.Session, year int, month time.Month, loc *time.Location) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		if !s.Complete() {
			continue
		}
		start := s.StartUTC.In(loc)
		if start.Year() == year && start.Month() == month {
			total += s.Span()
		}
	}
	return total
}

// GroupByMonth buckets sessions under their local start date for one
// calendar month. The result has exactly daysInMonth entries in descending
// day order (newest first); days without sessions appear with an empty list
// so the monthly view is dense.
func GroupByMonth(sessions []domain.Session, year int, month time.Month, loc *time.Location) []DayBucket {
	byDate := make(map[string][]domain.Session)
	for _, s := range sessions {
		start := s.StartUTC.In(loc)
		if start.Year() == year && start.Month() == month {
			date := start.Format(timeconv.DateLayout)
			byDate[date] = append(byDate[date], s)
		}
	}

	days := DaysInMonth(year, month)
	buckets := make([]DayBucket, 0, days)
	for day := days; day >= 1; day-- {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc).Format(timeconv.DateLayout)
		buckets = append(buckets, DayBucket{Date: date, Sessions: byDate[date]})
	}
	return buckets
}

// AvailableMonths lists the distinct months carrying session starts plus
// the month containing now, most recent first.
func AvailableMonths(sessions []domain.Session, now time.Time, loc *time.Location) []domain.MonthRef {
	type ym struct {
		year  int
		month time.Month
	}
	seen := make(map[ym]bool)

	local := now.In(loc)
	seen[ym{local.Year(), local.Month()}] = true
	for _, s := range sessions {
		start := s.StartUTC.In(loc)
		seen[ym{start.Year(), start.Month()}] = true
	}

	keys := make([]ym, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	refs := make([]domain.MonthRef, 0, len(keys))
	for _, k := range keys {
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, loc).Format("January 2006")
		refs = append(refs, domain.MonthRef{Year: k.year, Month: k.month, Label: label})
	}
	return refs
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// weekStart returns local midnight of the Monday of t's week.
func weekStart(t time.Time) time.Time {
	// Weekday is Sunday-based; shift so Monday maps to 0.
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
}
