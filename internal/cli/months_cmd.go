package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/cli/formatter"
)

func newMonthsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List months with recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Ledger.List(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0)
			for _, ref := range aggregate.AvailableMonths(sessions, app.now(), app.Loc) {
				total := aggregate.MonthlyTotal(sessions, ref.Year, ref.Month, app.Loc)
				rows = append(rows, []string{
					fmt.Sprintf("%04d-%02d", ref.Year, int(ref.Month)),
					ref.Label,
					aggregate.FormatDuration(total),
				})
			}

			fmt.Print(formatter.RenderTable([]string{"MONTH", "LABEL", "TOTAL"}, rows))
			return nil
		},
	}
}
