package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mlanger/zeiterfassung/internal/aggregate"
	"github.com/mlanger/zeiterfassung/internal/cli/formatter"
	"github.com/mlanger/zeiterfassung/internal/domain"
	"github.com/mlanger/zeiterfassung/internal/timeconv"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionStartCmd(app),
		newSessionStopCmd(app),
		newSessionListCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var date, start, end, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a completed work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if date == "" {
				date = timeconv.LocalDate(app.now(), app.Loc)
			}
			startUTC, err := timeconv.FromLocal(date, start, app.Loc)
			if err != nil {
				return err
			}

			s := domain.Session{
				ID:       uuid.New().String(),
				StartUTC: startUTC,
				Notes:    notes,
			}
			if end != "" {
				endUTC, err := timeconv.FromLocal(date, end, app.Loc)
				if err != nil {
					return err
				}
				s.EndUTC = &endUTC
			}

			if err := app.Ledger.Add(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Recorded session %s (%s %s)\n", formatter.TruncID(s.ID), date, start)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Local date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&start, "start", "", "Local start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "Local end time HH:MM (omit for an open session)")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newSessionStartCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an open session now",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := domain.Session{
				ID:       uuid.New().String(),
				StartUTC: app.now().UTC(),
				Notes:    notes,
			}
			if err := app.Ledger.Add(context.Background(), s); err != nil {
				return err
			}
			fmt.Printf("Started session %s at %s\n",
				formatter.TruncID(s.ID), timeconv.LocalClock(s.StartUTC, app.Loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")

	return cmd
}

func newSessionStopCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Complete the most recently started open session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sessions, err := app.Ledger.List(ctx)
			if err != nil {
				return err
			}

			open := findLatestOpen(sessions)
			if open == nil {
				return fmt.Errorf("no open session to stop")
			}

			now := app.now().UTC()
			patch := domain.SessionPatch{EndUTC: &now}
			if notes != "" {
				patch.Notes = &notes
			}
			if err := app.Ledger.Update(ctx, open.ID, patch); err != nil {
				return err
			}

			stopped := *open
			stopped.EndUTC = &now
			fmt.Printf("Stopped session %s after %s\n",
				formatter.TruncID(open.ID), aggregate.FormatDuration(stopped.Span()))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Replace the session notes on stop")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Ledger.List(context.Background())
			if err != nil {
				return err
			}

			year, m, err := resolveMonth(month, app.now(), app.Loc)
			if err != nil {
				return err
			}

			return renderMonthListing(app, sessions, year, m)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Calendar month YYYY-MM (default current)")

	return cmd
}

func newSessionEditCmd(app *App) *cobra.Command {
	var notes, start, end string
	var clearEnd bool

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id := args[0]

			patch := domain.SessionPatch{ClearEnd: clearEnd}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			if start != "" {
				t, ok := timeconv.ParseInstant(start)
				if !ok {
					return fmt.Errorf("invalid --start %q (expected RFC3339 UTC instant)", start)
				}
				patch.StartUTC = &t
			}
			if end != "" {
				t, ok := timeconv.ParseInstant(end)
				if !ok {
					return fmt.Errorf("invalid --end %q (expected RFC3339 UTC instant)", end)
				}
				patch.EndUTC = &t
			}

			// With no flags at all, fall back to an interactive notes prompt.
			if patch.Notes == nil && patch.StartUTC == nil && patch.EndUTC == nil && !clearEnd {
				if !app.interactive() {
					return fmt.Errorf("nothing to change: pass --notes, --start, --end, or --clear-end")
				}
				edited, err := promptNotes(ctx, app, id)
				if err != nil {
					return err
				}
				patch.Notes = &edited
			}

			if err := app.Ledger.Update(ctx, id, patch); err != nil {
				return err
			}
			fmt.Printf("Updated session %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.Flags().StringVar(&start, "start", "", "New start instant (RFC3339 UTC)")
	cmd.Flags().StringVar(&end, "end", "", "New end instant (RFC3339 UTC)")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Reopen the session by dropping its end")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !yes && app.interactive() {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove session %s?", formatter.TruncID(id))).
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Ledger.Remove(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// promptNotes loads the session's current notes and opens an editing prompt.
func promptNotes(ctx context.Context, app *App, id string) (string, error) {
	sessions, err := app.Ledger.List(ctx)
	if err != nil {
		return "", err
	}

	var current string
	for _, s := range sessions {
		if s.ID == id {
			current = s.Notes
			break
		}
	}

	edited := current
	form := huh.NewForm(huh.NewGroup(
		huh.NewText().Title("Notes").Value(&edited),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return edited, nil
}

// findLatestOpen returns the open session with the latest start, or nil.
func findLatestOpen(sessions []domain.Session) *domain.Session {
	var latest *domain.Session
	for i := range sessions {
		s := &sessions[i]
		if s.Complete() {
			continue
		}
		if latest == nil || s.StartUTC.After(latest.StartUTC) {
			latest = s
		}
	}
	return latest
}
