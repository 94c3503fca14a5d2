package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "user [NAME]",
		Short: "Show or set the display name used on reports",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				name, err := app.Ledger.UserName(ctx)
				if err != nil {
					return err
				}
				if name == "" {
					fmt.Println("No display name set.")
				} else {
					fmt.Println(name)
				}
				return nil
			}

			name := strings.Join(args, " ")
			if err := app.Ledger.SetUserName(ctx, name); err != nil {
				return err
			}
			fmt.Printf("Display name set to %q\n", name)
			return nil
		},
	}
}
