package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkin",
		Aliases: []string{"check-in", "ci"},
		Short:   "Record and review action plan check-ins",
	}

	cmd.AddCommand(
		newCheckInAddCmd(app),
		newCheckInListCmd(app),
	)

	return cmd
}

func newCheckInAddCmd(app *App) *cobra.Command {
	var fields CheckInFields

	cmd := &cobra.Command{
		Use:   "add PLAN_ID",
		Short: "Append a check-in; the plan and its objective are recomputed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if strings.TrimSpace(fields.Description) == "" && app.interactive() {
				prompt := app.PromptCheckIn
				if prompt == nil {
					prompt = huhCheckIn
				}
				if err := prompt(&fields); err != nil {
					return err
				}
			}

			in, err := fields.input()
			if err != nil {
				return err
			}
			p, err := app.Cascade.AppendCheckIn(ctx, app.Scope, id, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Check-in recorded for %s\n", p.Description)
			fmt.Fprintf(out, "Plan progress %s\n", formatter.RenderProgress(p.Progress, 10))
			if o, err := app.Objectives.GetByID(ctx, app.Scope, p.ObjectiveID); err == nil {
				fmt.Fprintf(out, "Objective %s achieved %s\n", o.Description, formatter.RenderProgress(o.AchievedPercentage, 10))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Description, "description", "", "What happened since the last check-in")
	cmd.Flags().StringVar(&fields.Date, "date", "", "Check-in date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&fields.Progress, "progress", "", "Progress reached (0-100, default 0)")

	return cmd
}

// input converts the raw fields, defaulting the date to today and progress
// to 0.
func (f CheckInFields) input() (domain.CheckInInput, error) {
	in := domain.CheckInInput{Description: f.Description, Date: today()}
	if f.Date != "" {
		d, err := parseDate("check-in", f.Date)
		if err != nil {
			return in, err
		}
		in.Date = d
	}
	if p := strings.TrimSpace(f.Progress); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return in, fmt.Errorf("invalid progress %q: enter a whole number", f.Progress)
		}
		in.Progress = n
	}
	return in, nil
}

func newCheckInListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PLAN_ID",
		Short: "List a plan's check-ins in the order they were recorded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			checkIns, err := app.Hierarchy.ListCheckIns(ctx, app.Scope, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckIns(checkIns))
			return nil
		},
	}
}
