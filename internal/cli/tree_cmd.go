package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show goals, objectives, action plans and check-ins as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := app.Hierarchy.Tree(context.Background(), app.Scope)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTree(tree))
			return nil
		},
	}
}
