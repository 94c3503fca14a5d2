package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all sessions as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Export.Export(context.Background())
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = res.Filename
			}
			if err := os.WriteFile(path, []byte(res.Content), 0600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default dated export name)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			res, importErr := app.Import.ImportCSV(context.Background(), string(data))
			// Rows imported before a failing save stay persisted, so
			// report the partial count even on error.
			fmt.Printf("Imported %d sessions (%d skipped)\n", res.Imported, res.Skipped)
			return importErr
		},
	}
}
