package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlanger/zeiterfassung/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	var month, out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a print-ready monthly timesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, m, err := resolveMonth(month, app.now(), app.Loc)
			if err != nil {
				return err
			}

			sheet, err := app.Report.MonthlyTimesheet(context.Background(), year, m)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = fmt.Sprintf("zeiterfassung-%04d-%02d.html", year, int(m))
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()

			if err := report.Render(f, sheet); err != nil {
				return err
			}
			fmt.Printf("Wrote timesheet %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Calendar month YYYY-MM (default current)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default zeiterfassung-YYYY-MM.html)")

	return cmd
}
