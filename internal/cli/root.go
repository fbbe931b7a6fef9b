package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrForbidden is returned when the caller's role may not run a command.
var ErrForbidden = errors.New("permission denied")

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals      service.GoalService
	Objectives service.ObjectiveService
	Cascade    service.CascadeService
	Hierarchy  service.HierarchyService
	Strategy   service.StrategyService
	Users      service.UserService
	Import     service.ImportService

	// Scope is the configured caller. --company, --role and --user override it.
	Scope domain.Scope

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh confirm form.
	Confirm func(title string) (bool, error)
	// PromptCheckIn fills missing check-in fields. Nil uses a huh form.
	PromptCheckIn func(f *CheckInFields) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// scopeFlags are the persistent caller overrides.
type scopeFlags struct {
	company string
	role    string
	user    string
}

func bindScopeFlags(fs *pflag.FlagSet, f *scopeFlags) {
	fs.StringVar(&f.company, "company", "", "Company ID to act in (overrides STRATA_COMPANY)")
	fs.StringVar(&f.role, "role", "", "Caller role: ADMIN, MASTER or USER (overrides STRATA_ROLE)")
	fs.StringVar(&f.user, "user", "", "Caller user ID (overrides STRATA_USER)")
}

func (f *scopeFlags) apply(fs *pflag.FlagSet, scope *domain.Scope) {
	if fs.Changed("company") {
		scope.CompanyID = f.company
	}
	if fs.Changed("role") {
		scope.Role = domain.ParseRole(f.role)
	}
	if fs.Changed("user") {
		scope.UserID = f.user
	}
}

// NewRootCmd creates the top-level "strata" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags scopeFlags

	root := &cobra.Command{
		Use:           "strata",
		Short:         "Strategic planning: goals, objectives, action plans and check-ins",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd.Flags(), &app.Scope)
			if app.Scope.Role == "" {
				app.Scope.Role = domain.RoleUser
			}
			return nil
		},
	}
	bindScopeFlags(root.PersistentFlags(), &flags)

	root.AddCommand(
		newGoalCmd(app),
		newObjectiveCmd(app),
		newPlanCmd(app),
		newCheckInCmd(app),
		newValueCmd(app),
		newStatementCmd(app, "vision"),
		newStatementCmd(app, "mission"),
		newOverviewCmd(app),
		newUserCmd(app),
		newTreeCmd(app),
		newImportCmd(app),
	)

	return root
}

// requireManager gates commands that edit company-wide strategy or users.
func requireManager(app *App) error {
	if !app.Scope.Role.CanManageStrategy() {
		return fmt.Errorf("%w: role %s cannot change company strategy or users", ErrForbidden, app.Scope.Role)
	}
	return nil
}
