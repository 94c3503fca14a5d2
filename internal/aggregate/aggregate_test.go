package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/testutil"
)

func TestDailyTotal_SumsCompletedSessionsOfLocalDay(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), 150),
		testutil.NewSession(time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), 30),
		testutil.NewSession(time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), 60),
		testutil.NewSession(time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC), 45, testutil.Open()),
	}

	ref := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	total := DailyTotal(sessions, ref, testutil.Zone)

	assert.Equal(t, 180*time.Minute, total)
	assert.Equal(t, "3h 0m", FormatDuration(total))
}

func TestDailyTotal_SingleSessionScenario(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), 150),
	}

	ref := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	total := DailyTotal(sessions, ref, testutil.Zone)

	assert.Equal(t, 150*time.Minute, total)
	assert.Equal(t, "2h 30m", FormatDuration(total))
}

func TestDailyTotal_BucketsByLocalDateNotUTC(t *testing.T) {
	// 23:00 UTC on Jan 1 is 01:00 Jan 2 at UTC+2.
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), 60),
	}

	jan1 := time.Date(2024, 1, 1, 12, 0, 0, 0, testutil.Zone)
	jan2 := time.Date(2024, 1, 2, 12, 0, 0, 0, testutil.Zone)

	assert.Zero(t, DailyTotal(sessions, jan1, testutil.Zone))
	assert.Equal(t, time.Hour, DailyTotal(sessions, jan2, testutil.Zone))
}

func TestDailyTotal_NegativeSpanClampsToZero(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		testutil.NewSession(start, 0, testutil.WithEnd(start.Add(-time.Hour))),
	}

	assert.Zero(t, DailyTotal(sessions, start, testutil.Zone))
}

func TestWeeklyTotal_MondayStartWindow(t *testing.T) {
	// 2024-01-03 is a Wednesday; its ISO week is Mon Jan 1 .. Sun Jan 7.
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 1, 8, 0, 0, 0, testutil.Zone), 60),  // Monday
		testutil.NewSession(time.Date(2024, 1, 7, 22, 0, 0, 0, testutil.Zone), 30), // Sunday evening
		testutil.NewSession(time.Date(2023, 12, 31, 8, 0, 0, 0, testutil.Zone), 45), // previous Sunday
		testutil.NewSession(time.Date(2024, 1, 8, 8, 0, 0, 0, testutil.Zone), 45),   // next Monday
		testutil.NewSession(time.Date(2024, 1, 3, 8, 0, 0, 0, testutil.Zone), 20, testutil.Open()),
	}

	ref := time.Date(2024, 1, 3, 12, 0, 0, 0, testutil.Zone)
	total := WeeklyTotal(sessions, ref, testutil.Zone)

	assert.Equal(t, 90*time.Minute, total)
}

func TestWeeklyTotal_RefOnMondayAndSunday(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 1, 8, 0, 0, 0, testutil.Zone), 60),
	}

	monday := time.Date(2024, 1, 1, 0, 0, 0, 0, testutil.Zone)
	sunday := time.Date(2024, 1, 7, 23, 59, 0, 0, testutil.Zone)

	assert.Equal(t, time.Hour, WeeklyTotal(sessions, monday, testutil.Zone))
	assert.Equal(t, time.Hour, WeeklyTotal(sessions, sunday, testutil.Zone))
}

func TestMonthlyTotal(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 1, 5, 8, 0, 0, 0, testutil.Zone), 60),
		testutil.NewSession(time.Date(2024, 1, 31, 20, 0, 0, 0, testutil.Zone), 90),
		testutil.NewSession(time.Date(2024, 2, 1, 8, 0, 0, 0, testutil.Zone), 30),
		testutil.NewSession(time.Date(2024, 1, 10, 8, 0, 0, 0, testutil.Zone), 15, testutil.Open()),
	}

	assert.Equal(t, 150*time.Minute, MonthlyTotal(sessions, 2024, time.January, testutil.Zone))
	assert.Equal(t, 30*time.Minute, MonthlyTotal(sessions, 2024, time.February, testutil.Zone))
	assert.Zero(t, MonthlyTotal(sessions, 2024, time.March, testutil.Zone))
}

func TestGroupByMonth_DenseDescending(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 2, 10, 8, 0, 0, 0, testutil.Zone), 60),
		testutil.NewSession(time.Date(2024, 2, 10, 14, 0, 0, 0, testutil.Zone), 30),
		testutil.NewSession(time.Date(2024, 2, 1, 8, 0, 0, 0, testutil.Zone), 45),
		testutil.NewSession(time.Date(2024, 3, 1, 8, 0, 0, 0, testutil.Zone), 45),
	}

	buckets := GroupByMonth(sessions, 2024, time.February, testutil.Zone)

	// 2024 is a leap year.
	require.Len(t, buckets, 29)
	assert.Equal(t, "2024-02-29", buckets[0].Date)
	assert.Equal(t, "2024-02-01", buckets[28].Date)

	seen := make(map[string]bool)
	for _, b := range buckets {
		assert.False(t, seen[b.Date], "duplicate date %s", b.Date)
		seen[b.Date] = true
	}

	assert.Len(t, buckets[19].Sessions, 2) // 2024-02-10
	assert.Len(t, buckets[28].Sessions, 1)
	assert.Empty(t, buckets[1].Sessions)
}

func TestGroupByMonth_IncludesOpenSessions(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2024, 2, 10, 8, 0, 0, 0, testutil.Zone), 0, testutil.Open()),
	}

	buckets := GroupByMonth(sessions, 2024, time.February, testutil.Zone)

	var found bool
	for _, b := range buckets {
		if b.Date == "2024-02-10" {
			found = true
			require.Len(t, b.Sessions, 1)
			assert.False(t, b.Sessions[0].Complete())
		}
	}
	assert.True(t, found)
}

func TestAvailableMonths_DistinctDescendingWithCurrent(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewSession(time.Date(2023, 11, 5, 8, 0, 0, 0, testutil.Zone), 60),
		testutil.NewSession(time.Date(2023, 11, 20, 8, 0, 0, 0, testutil.Zone), 60),
		testutil.NewSession(time.Date(2024, 1, 2, 8, 0, 0, 0, testutil.Zone), 60),
	}

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, testutil.Zone)
	months := AvailableMonths(sessions, now, testutil.Zone)

	require.Len(t, months, 3)
	assert.Equal(t, 2024, months[0].Year)
	assert.Equal(t, time.March, months[0].Month)
	assert.Equal(t, "March 2024", months[0].Label)
	assert.Equal(t, time.January, months[1].Month)
	assert.Equal(t, time.November, months[2].Month)
	assert.Equal(t, "November 2023", months[2].Label)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0m", FormatDuration(0))
	assert.Equal(t, "0m", FormatDuration(59*time.Second))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "1h 0m", FormatDuration(time.Hour))
	assert.Equal(t, "2h 30m", FormatDuration(150*time.Minute))
	assert.Equal(t, "2h 30m", FormatDuration(150*time.Minute+59*time.Second))
}
