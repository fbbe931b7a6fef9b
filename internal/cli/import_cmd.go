package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/strata/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a strategic plan from a YAML or JSON file",
		Long: `Import goals, objectives, action plans, check-ins, values, users,
vision and mission from one file. The whole file is validated first and
written in a single transaction; derived progress is computed on import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireManager(app); err != nil {
				return err
			}
			res, err := app.Import.ImportFile(context.Background(), app.Scope, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
