package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mlanger/zeiterfassung/internal/ledger"
	"github.com/mlanger/zeiterfassung/internal/service"
)

// App holds the ledger, services, and environment used by the CLI commands.
// Commands read a fresh snapshot through the Ledger on every invocation;
// there is no cached session list.
type App struct {
	Ledger *ledger.Ledger
	Import service.ImportService
	Export service.ExportService
	Report service.ReportService

	// Loc is the timezone all calendar bucketing and display happens in.
	Loc *time.Location

	// Now is injectable for tests.
	Now func() time.Time

	// IsInteractive gates confirmation and editing prompts.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "zeiterfassung" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "zeiterfassung",
		Short: "Personal time-tracking ledger",
	}

	root.AddCommand(
		newSessionCmd(app),
		newTotalCmd(app),
		newMonthsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newReportCmd(app),
		newUserCmd(app),
	)

	return root
}
