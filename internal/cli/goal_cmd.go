package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	goals, err := app.Goals.List(ctx, app.Scope)
	if err != nil {
		return "", err
	}
	return resolveID("goal", input, goals)
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalEditCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Goals.Create(context.Background(), app.Scope, domain.GoalInput{Description: description})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s [%s]\n", g.Description, shortID(g.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals))
			return nil
		},
	}
}

func newGoalEditCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change a goal's description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.Update(ctx, app.Scope, id, domain.GoalInput{Description: description})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", g.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Delete this goal?", yes)
			if err != nil || !ok {
				return err
			}
			if err := app.Goals.Delete(ctx, app.Scope, id, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if objectives still reference the goal")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
