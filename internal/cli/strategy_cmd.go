package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func newValueCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Manage company values",
	}

	cmd.AddCommand(
		newValueAddCmd(app),
		newValueListCmd(app),
		newValueEditCmd(app),
		newValueRemoveCmd(app),
	)

	return cmd
}

func resolveValueID(ctx context.Context, app *App, input string) (string, error) {
	values, err := app.Strategy.ListValues(ctx, app.Scope)
	if err != nil {
		return "", err
	}
	return resolveID("value", input, values)
}

func newValueAddCmd(app *App) *cobra.Command {
	var in domain.ValueInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a company value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			v, err := app.Strategy.AddValue(context.Background(), app.Scope, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added value %s [%s]\n", v.Description, shortID(v.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Description, "description", "", "Value name")
	cmd.Flags().StringVar(&in.Meaning, "meaning", "", "What the value means in practice")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newValueListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List company values",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := app.Strategy.ListValues(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No values found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValueList(values))
			return nil
		},
	}
}

func newValueEditCmd(app *App) *cobra.Command {
	var description, meaning string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a company value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			ctx := context.Background()
			id, err := resolveValueID(ctx, app, args[0])
			if err != nil {
				return err
			}
			values, err := app.Strategy.ListValues(ctx, app.Scope)
			if err != nil {
				return err
			}
			in := domain.ValueInput{Description: description, Meaning: meaning}
			for _, v := range values {
				if v.ID == id {
					in.Description = domain.CoalesceStr(description, v.Description)
					if !cmd.Flags().Changed("meaning") {
						in.Meaning = v.Meaning
					}
				}
			}
			v, err := app.Strategy.UpdateValue(ctx, app.Scope, id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated value %s\n", v.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Value name")
	cmd.Flags().StringVar(&meaning, "meaning", "", "What the value means in practice")

	return cmd
}

func newValueRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a company value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			ctx := context.Background()
			id, err := resolveValueID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Delete this value?", yes)
			if err != nil || !ok {
				return err
			}
			if err := app.Strategy.DeleteValue(ctx, app.Scope, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Value deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// newStatementCmd builds the "vision" and "mission" commands, which share
// one-per-company upsert semantics.
func newStatementCmd(app *App, kind string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: fmt.Sprintf("Show or set the company %s", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Strategy.Overview(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			st := ov.Vision
			if kind == "mission" {
				st = ov.Mission
			}
			if st == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s defined.\n", kind)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Description)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set TEXT...",
		Short: fmt.Sprintf("Replace the company %s", kind),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			text := strings.Join(args, " ")
			setter := app.Strategy.SetVision
			if kind == "mission" {
				setter = app.Strategy.SetMission
			}
			st, err := setter(context.Background(), app.Scope, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s updated: %s\n", strings.ToUpper(kind[:1])+kind[1:], st.Description)
			return nil
		},
	}
	cmd.AddCommand(set)

	return cmd
}

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show vision, mission and values",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Strategy.Overview(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(ov))
			return nil
		},
	}
}
