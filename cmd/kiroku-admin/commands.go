package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/kiroku/internal/app"
	sessionRepo "github.com/KirkDiggler/kiroku/internal/repositories/drinking_session"
	"github.com/KirkDiggler/kiroku/internal/services/calendar"
	"github.com/KirkDiggler/kiroku/internal/services/session"
)

// connectFunc opens the application for one command run
type connectFunc func(ctx context.Context) (*app.App, error)

func newRootCmd(connect connectFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "kiroku-admin",
		Short:         "Maintenance commands for Kiroku data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newFixTimezoneCmd(connect),
		newCalendarCmd(connect),
	)
	return root
}

func newFixTimezoneCmd(connect connectFunc) *cobra.Command {
	var (
		userID string
		from   string
		to     string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "fix-timezone",
		Short: "Reinterpret a user's sessions recorded in the wrong timezone",
		Long: `Sessions recorded in --from (or without a timezone) keep their
wall-clock times but are moved to --to. All sessions are written in one
atomic batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if dryRun {
				return previewFix(cmd.Context(), out, a, userID, from, to)
			}

			result, err := a.Sessions.FixTimezone(cmd.Context(), &session.FixTimezoneInput{
				UserID:      userID,
				OldTimezone: from,
				NewTimezone: to,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "fixed %d sessions\n", result.FixedCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID")
	cmd.Flags().StringVar(&from, "from", "", "timezone the sessions were wrongly recorded in")
	cmd.Flags().StringVar(&to, "to", "", "timezone the sessions belong to")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the changes without writing them")
	for _, name := range []string{"user", "from", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func previewFix(ctx context.Context, out io.Writer, a *app.App, userID, from, to string) error {
	all, err := a.SessionRepo.GetAllSessions(ctx, &sessionRepo.GetAllSessionsInput{UserID: userID})
	if err != nil {
		return err
	}

	fixed, err := session.FixTimezoneSessions(all.Sessions, from, to)
	if err != nil {
		return err
	}

	changed := 0
	for i, before := range all.Sessions {
		after := fixed[i]
		if after.Timezone == before.Timezone && after.StartTime.Equal(before.StartTime) {
			continue
		}
		changed++
		fmt.Fprintf(out, "%s: %s -> %s\n", before.ID,
			before.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
			after.StartTime.UTC().Format("2006-01-02T15:04:05Z"))
	}

	fmt.Fprintf(out, "would fix %d sessions\n", changed)
	return nil
}

func newCalendarCmd(connect connectFunc) *cobra.Command {
	var (
		userID string
		month  string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a user's month of day aggregates as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			view, err := a.Calendar.GetMonth(cmd.Context(), &calendar.GetMonthInput{
				UserID: userID,
				Month:  month,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID")
	cmd.Flags().StringVar(&month, "month", "", "month in YYYY-MM")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
