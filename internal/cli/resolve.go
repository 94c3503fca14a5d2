package cli

import (
	"fmt"
	"time"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/cli/formatter"
	"github.com/mlanger/zeiterfassung/internal/domain"
)

// resolveMonth parses a YYYY-MM flag value, defaulting to the month
// containing now in the app's zone.
func resolveMonth(flag string, now time.Time, loc *time.Location) (int, time.Month, error) {
	if flag == "" {
		local := now.In(loc)
		return local.Year(), local.Month(), nil
	}
	t, err := time.ParseInLocation("2006-01", flag, loc)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", flag)
	}
	return t.Year(), t.Month(), nil
}

// renderMonthListing prints the dense per-day session table for one month,
// newest day first, with a month total underneath.
func renderMonthListing(app *App, sessions []domain.Session, year int, month time.Month) error {
	buckets := aggregate.GroupByMonth(sessions, year, month, app.Loc)

	var rows [][]string
	for _, bucket := range buckets {
		if len(bucket.Sessions) == 0 {
			continue
		}
		for _, s := range bucket.Sessions {
			rows = append(rows, formatter.SessionRow(s, app.Loc))
		}
	}

	label := time.Date(year, month, 1, 0, 0, 0, 0, app.Loc).Format("January 2006")
	if len(rows) == 0 {
		fmt.Printf("No sessions in %s.\n", label)
		return nil
	}

	total := aggregate.MonthlyTotal(sessions, year, month, app.Loc)
	content := formatter.RenderTable(formatter.SessionHeaders, rows) +
		"\n" + formatter.StyleBold.Render("Total: "+aggregate.FormatDuration(total))
	fmt.Print(formatter.RenderBox(label, content))
	fmt.Println()
	return nil
}
