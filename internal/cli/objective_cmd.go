package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func resolveObjectiveID(ctx context.Context, app *App, input string) (string, error) {
	objectives, err := app.Objectives.List(ctx, app.Scope, "")
	if err != nil {
		return "", err
	}
	return resolveID("objective", input, objectives)
}

func newObjectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objective",
		Aliases: []string{"obj"},
		Short:   "Manage objectives",
	}

	cmd.AddCommand(
		newObjectiveAddCmd(app),
		newObjectiveListCmd(app),
		newObjectiveEditCmd(app),
		newObjectiveProgressCmd(app),
		newObjectiveRecomputeCmd(app),
		newObjectiveRemoveCmd(app),
	)

	return cmd
}

type objectiveFlags struct {
	description string
	goal        string
	start       string
	end         string
	progress    int
}

func (f *objectiveFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.description, "description", "", "Objective description")
	cmd.Flags().StringVar(&f.goal, "goal", "", "Goal ID or prefix")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.progress, "progress", 0, "Manual progress (0-100)")
}

func (f *objectiveFlags) input(ctx context.Context, app *App) (domain.ObjectiveInput, error) {
	goalID, err := resolveGoalID(ctx, app, f.goal)
	if err != nil {
		return domain.ObjectiveInput{}, err
	}
	start, err := parseDate("start", f.start)
	if err != nil {
		return domain.ObjectiveInput{}, err
	}
	end, err := parseDate("end", f.end)
	if err != nil {
		return domain.ObjectiveInput{}, err
	}
	return domain.ObjectiveInput{
		Description: f.description,
		StartDate:   start,
		EndDate:     end,
		GoalID:      goalID,
		Progress:    f.progress,
	}, nil
}

func newObjectiveAddCmd(app *App) *cobra.Command {
	var f objectiveFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an objective under a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := f.input(ctx, app)
			if err != nil {
				return err
			}
			o, err := app.Objectives.Create(ctx, app.Scope, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created objective %s [%s]\n", o.Description, shortID(o.ID))
			return nil
		},
	}

	f.bind(cmd)
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("goal")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newObjectiveListCmd(app *App) *cobra.Command {
	var goal string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goalID := ""
			if goal != "" {
				var err error
				if goalID, err = resolveGoalID(ctx, app, goal); err != nil {
					return err
				}
			}
			objectives, err := app.Objectives.List(ctx, app.Scope, goalID)
			if err != nil {
				return err
			}
			if len(objectives) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No objectives found.")
				return nil
			}
			names, err := app.Hierarchy.Names(ctx, app.Scope)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatObjectiveList(objectives, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Only objectives under this goal")

	return cmd
}

func newObjectiveEditCmd(app *App) *cobra.Command {
	var f objectiveFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace an objective's editable fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Objectives.GetByID(ctx, app.Scope, id)
			if err != nil {
				return err
			}

			// Unset flags keep the stored value.
			in := domain.ObjectiveInput{
				Description: domain.CoalesceStr(f.description, current.Description),
				StartDate:   current.StartDate,
				EndDate:     current.EndDate,
				GoalID:      current.GoalID,
				Progress:    current.Progress,
			}
			if f.goal != "" {
				if in.GoalID, err = resolveGoalID(ctx, app, f.goal); err != nil {
					return err
				}
			}
			if f.start != "" {
				if in.StartDate, err = parseDate("start", f.start); err != nil {
					return err
				}
			}
			if f.end != "" {
				if in.EndDate, err = parseDate("end", f.end); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("progress") {
				in.Progress = f.progress
			}

			o, err := app.Objectives.Update(ctx, app.Scope, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated objective %s\n", o.Description)
			return nil
		},
	}

	f.bind(cmd)

	return cmd
}

func newObjectiveProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID PERCENT",
		Short: "Set an objective's manual progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percent %q", args[1])
			}
			o, err := app.Cascade.UpdateObjectiveManualProgress(ctx, app.Scope, id, pct)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", o.Description, formatter.RenderDualProgress(o.Progress, o.AchievedPercentage, 10))
			return nil
		},
	}
}

func newObjectiveRecomputeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute ID",
		Short: "Re-derive an objective's achieved percentage from its action plans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			o, err := app.Cascade.RecomputeObjective(ctx, app.Scope, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s achieved %d%%\n", o.Description, o.AchievedPercentage)
			return nil
		},
	}
}

func newObjectiveRemoveCmd(app *App) *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Delete this objective?", yes)
			if err != nil || !ok {
				return err
			}
			if err := app.Objectives.Delete(ctx, app.Scope, id, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Objective deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if action plans still reference the objective")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
