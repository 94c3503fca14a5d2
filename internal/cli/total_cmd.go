package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

func newTotalCmd(app *App) *cobra.Command {
	var date, month string
	var week bool

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show daily, weekly, or monthly totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Ledger.List(context.Background())
			if err != nil {
				return err
			}

			switch {
			case month != "":
				year, m, err := resolveMonth(month, app.now(), app.Loc)
				if err != nil {
					return err
				}
				total := aggregate.MonthlyTotal(sessions, year, m, app.Loc)
				label := time.Date(year, m, 1, 0, 0, 0, 0, app.Loc).Format("January 2006")
				fmt.Printf("%s: %s\n", label, aggregate.FormatDuration(total))

			case week:
				ref, err := resolveDate(date, app.now(), app.Loc)
				if err != nil {
					return err
				}
				total := aggregate.WeeklyTotal(sessions, ref, app.Loc)
				fmt.Printf("Week of %s: %s\n",
					timeconv.LocalDate(ref, app.Loc), aggregate.FormatDuration(total))

			default:
				ref, err := resolveDate(date, app.now(), app.Loc)
				if err != nil {
					return err
				}
				total := aggregate.DailyTotal(sessions, ref, app.Loc)
				fmt.Printf("%s: %s\n",
					timeconv.LocalDate(ref, app.Loc), aggregate.FormatDuration(total))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference local date YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&week, "week", false, "Total for the Monday-start week of the reference date")
	cmd.Flags().StringVar(&month, "month", "", "Total for a calendar month YYYY-MM")

	return cmd
}

// resolveDate parses a YYYY-MM-DD flag value as local midnight, defaulting
// to now.
func resolveDate(flag string, now time.Time, loc *time.Location) (time.Time, error) {
	if flag == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(timeconv.DateLayout, flag, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", flag)
	}
	return t, nil
}
