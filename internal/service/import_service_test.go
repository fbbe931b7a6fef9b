package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/importer"
	"github.com/alexanderramin/strata/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importFixture = `
vision: Be the default choice for planning
mission: Make execution visible
values:
  - description: Candor
    meaning: Say the hard thing early
users:
  - ref: ana
    name: Ana
    role: master
goals:
  - description: Grow revenue
    objectives:
      - description: Close 10 enterprise deals
        start_date: 2025-01-01
        end_date: 2025-12-31
        progress: 15
        action_plans:
          - description: Hire SDRs
            responsible: ana
            how_to: Two hires per quarter
            start_date: 2025-02-01
            end_date: 2025-06-30
            check_ins:
              - date: 2025-03-01
                description: first hire signed
                progress: 40
              - date: 2025-04-01
                description: second candidate declined
                progress: 20
          - description: Build target list
            responsible: ana
            how_to: Enrich CRM accounts
            start_date: 2025-01-15
            end_date: 2025-03-31
            check_ins:
              - date: 2025-02-01
                description: 300 accounts tagged
                progress: 75
      - description: Launch partner channel
        start_date: 2025-04-01
        end_date: 2025-09-30
`

func parseFixture(t *testing.T, data string) *importer.PlanFile {
	t.Helper()
	pf, err := importer.ParsePlanFile([]byte(data))
	require.NoError(t, err)
	return pf
}

func TestImport_DerivesProgressThroughCascade(t *testing.T) {
	for name, uow := range testutil.Backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			scope := testutil.TestScope()
			svc := newServices(uow)

			res, err := svc.imports.ImportPlan(ctx, scope, parseFixture(t, importFixture))
			require.NoError(t, err)
			assert.Equal(t, 1, res.GoalCount)
			assert.Equal(t, 2, res.ObjectiveCount)
			assert.Equal(t, 2, res.ActionPlanCount)
			assert.Equal(t, 3, res.CheckInCount)
			assert.Equal(t, 1, res.ValueCount)
			assert.Equal(t, 1, res.UserCount)

			plans, err := svc.hierarchy.ListActionPlans(ctx, scope, "")
			require.NoError(t, err)
			require.Len(t, plans, 2)
			assert.Equal(t, 40, plans[0].Progress, "a later lower check-in never regresses the plan")
			assert.Equal(t, 75, plans[1].Progress)

			require.Len(t, res.Objectives, 2)
			deals := svc.objective(t, res.Objectives[0].ID)
			assert.Equal(t, 58, deals.AchievedPercentage, "round((40+75)/2)")
			assert.Equal(t, 15, deals.Progress, "manual progress kept as imported")
			assert.Equal(t, 0, svc.objective(t, res.Objectives[1].ID).AchievedPercentage)

			ov, err := svc.strategy.Overview(ctx, scope)
			require.NoError(t, err)
			require.NotNil(t, ov.Vision)
			assert.Equal(t, "Be the default choice for planning", ov.Vision.Description)
			require.NotNil(t, ov.Mission)
			require.Len(t, ov.Values, 1)

			users, err := svc.users.List(ctx, scope)
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, users[0].ID, plans[0].ResponsibleID)
			assert.Equal(t, domain.RoleMaster, users[0].Role)
		})
	}
}

func TestImport_ValidationRejectsWholeFile(t *testing.T) {
	ctx := context.Background()
	svc := newServices(testutil.NewMemoryUoW())

	pf := parseFixture(t, importFixture)
	pf.Goals[0].Objectives[0].ActionPlans[1].Responsible = "nobody"
	pf.Goals[0].Objectives[1].EndDate = ""

	_, err := svc.imports.ImportPlan(ctx, testutil.TestScope(), pf)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), `goals[0].objectives[0].action_plans[1].responsible: "nobody"`)
	assert.Contains(t, err.Error(), "goals[0].objectives[1].end_date is required")

	goals, err := svc.goals.List(ctx, testutil.TestScope())
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestImport_ResponsibleMayNameExistingUser(t *testing.T) {
	ctx := context.Background()
	svc := newServices(testutil.NewMemoryUoW())
	existing, err := svc.users.Create(ctx, testutil.TestScope(), domain.UserInput{Name: "Bo", Role: domain.RoleUser})
	require.NoError(t, err)

	pf := parseFixture(t, importFixture)
	pf.Users = nil
	for i := range pf.Goals[0].Objectives[0].ActionPlans {
		pf.Goals[0].Objectives[0].ActionPlans[i].Responsible = existing.ID
	}

	_, err = svc.imports.ImportPlan(ctx, testutil.TestScope(), pf)
	require.NoError(t, err)

	other := domain.Scope{CompanyID: testutil.OtherCompany, Role: domain.RoleAdmin}
	_, err = svc.imports.ImportPlan(ctx, other, pf)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "another company's user is not a valid responsible")
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	svc := newServices(testutil.NewTestUoW(database))

	// Writes run users, values, goals, objectives, action plans; fail on goals.
	failing := NewImportService(&testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    errors.New("injected goal write failure"),
	})
	_, err := failing.ImportPlan(ctx, testutil.TestScope(), parseFixture(t, importFixture))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected goal write failure")

	users, err := svc.users.List(ctx, testutil.TestScope())
	require.NoError(t, err)
	assert.Empty(t, users, "users written before the failure are rolled back")
	values, err := svc.strategy.ListValues(ctx, testutil.TestScope())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestImport_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importFixture), 0o644))
	svc := newServices(testutil.NewMemoryUoW())

	res, err := svc.imports.ImportFile(context.Background(), testutil.TestScope(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ObjectiveCount)

	_, err = svc.imports.ImportFile(context.Background(), testutil.TestScope(), filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}

func TestImport_RequiresScope(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	_, err := svc.imports.ImportPlan(context.Background(), domain.Scope{}, parseFixture(t, importFixture))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
