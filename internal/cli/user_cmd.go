package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/alexanderramin/strata/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage company users",
	}

	cmd.AddCommand(newUserAddCmd(app), newUserListCmd(app))

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user who can be responsible for action plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			u, err := app.Users.Create(context.Background(), app.Scope, domain.UserInput{
				Name:  name,
				Email: email,
				Role:  domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s [%s] as %s\n", u.Name, shortID(u.ID), u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "user-role", string(domain.RoleUser), "ADMIN, MASTER or USER")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List company users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUserList(users))
			return nil
		},
	}
}
