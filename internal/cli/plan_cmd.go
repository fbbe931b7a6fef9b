package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	plans, err := app.Hierarchy.ListActionPlans(ctx, app.Scope, "")
	if err != nil {
		return "", err
	}
	return resolveID("action plan", input, plans)
}

func resolveUserID(ctx context.Context, app *App, input string) (string, error) {
	users, err := app.Users.List(ctx, app.Scope)
	if err != nil {
		return "", err
	}
	return resolveID("user", input, users)
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"action-plan"},
		Short:   "Manage action plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanEditCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

type planFlags struct {
	description string
	responsible string
	howTo       string
	start       string
	end         string
	objective   string
}

func (f *planFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.description, "description", "", "Action plan description")
	cmd.Flags().StringVar(&f.responsible, "responsible", "", "Responsible user ID or prefix")
	cmd.Flags().StringVar(&f.howTo, "how", "", "How the plan will be carried out")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.objective, "objective", "", "Objective ID or prefix")
}

// merge overlays the set flags onto base.
func (f *planFlags) merge(ctx context.Context, app *App, base domain.ActionPlanInput) (domain.ActionPlanInput, error) {
	in := base
	in.Description = domain.CoalesceStr(f.description, base.Description)
	in.HowTo = domain.CoalesceStr(f.howTo, base.HowTo)
	var err error
	if f.objective != "" {
		if in.ObjectiveID, err = resolveObjectiveID(ctx, app, f.objective); err != nil {
			return in, err
		}
	}
	if f.responsible != "" {
		if in.ResponsibleID, err = resolveUserID(ctx, app, f.responsible); err != nil {
			return in, err
		}
	}
	if f.start != "" {
		if in.StartDate, err = parseDate("start", f.start); err != nil {
			return in, err
		}
	}
	if f.end != "" {
		if in.EndDate, err = parseDate("end", f.end); err != nil {
			return in, err
		}
	}
	return in, nil
}

func newPlanAddCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an action plan for an objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := f.merge(ctx, app, domain.ActionPlanInput{})
			if err != nil {
				return err
			}
			p, err := app.Cascade.CreateActionPlan(ctx, app.Scope, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created action plan %s [%s]\n", p.Description, shortID(p.ID))
			return nil
		},
	}

	f.bind(cmd)
	for _, name := range []string{"description", "responsible", "how", "start", "end", "objective"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var objective string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List action plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			objectiveID := ""
			if objective != "" {
				var err error
				if objectiveID, err = resolveObjectiveID(ctx, app, objective); err != nil {
					return err
				}
			}
			plans, err := app.Hierarchy.ListActionPlans(ctx, app.Scope, objectiveID)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No action plans found.")
				return nil
			}
			names, err := app.Hierarchy.Names(ctx, app.Scope)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActionPlanList(plans, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&objective, "objective", "", "Only plans linked to this objective")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an action plan and its check-ins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Hierarchy.GetActionPlan(ctx, app.Scope, id)
			if err != nil {
				return err
			}
			names, err := app.Hierarchy.Names(ctx, app.Scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActionPlan(p, names))
			return nil
		},
	}
}

func newPlanEditCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an action plan; moving it to another objective recomputes both",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Hierarchy.GetActionPlan(ctx, app.Scope, id)
			if err != nil {
				return err
			}
			in, err := f.merge(ctx, app, domain.ActionPlanInput{
				Description:   current.Description,
				ResponsibleID: current.ResponsibleID,
				HowTo:         current.HowTo,
				StartDate:     current.StartDate,
				EndDate:       current.EndDate,
				ObjectiveID:   current.ObjectiveID,
			})
			if err != nil {
				return err
			}
			p, err := app.Cascade.UpdateActionPlan(ctx, app.Scope, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated action plan %s\n", p.Description)
			return nil
		},
	}

	f.bind(cmd)

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete an action plan and recompute its objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Delete this action plan and its check-ins?", yes)
			if err != nil || !ok {
				return err
			}
			if err := app.Cascade.DeleteActionPlan(ctx, app.Scope, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Action plan deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
