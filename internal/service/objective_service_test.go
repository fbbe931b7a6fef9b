package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectiveInput(goalID, description string, progress int) domain.ObjectiveInput {
	return domain.ObjectiveInput{
		Description: description,
		StartDate:   testutil.Date(2025, 1, 1),
		EndDate:     testutil.Date(2025, 6, 30),
		GoalID:      goalID,
		Progress:    progress,
	}
}

func TestObjectiveService_CreateDefaults(t *testing.T) {
	svc := newServices(testutil.NewTestUoW(testutil.NewTestDB(t)))
	ctx := context.Background()
	g, err := svc.goals.Create(ctx, testutil.TestScope(), domain.GoalInput{Description: "g"})
	require.NoError(t, err)

	o, err := svc.objectives.Create(ctx, testutil.TestScope(), objectiveInput(g.ID, "o", 0))
	require.NoError(t, err)
	assert.Equal(t, 0, o.Progress)
	assert.Equal(t, 0, o.AchievedPercentage)

	clamped, err := svc.objectives.Create(ctx, testutil.TestScope(), objectiveInput(g.ID, "o2", 130))
	require.NoError(t, err)
	assert.Equal(t, 100, clamped.Progress)
}

func TestObjectiveService_CreateValidation(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	ctx := context.Background()

	_, err := svc.objectives.Create(ctx, testutil.TestScope(), domain.ObjectiveInput{Description: "no dates", GoalID: "g"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "start_date is required")

	_, err = svc.objectives.Create(ctx, testutil.TestScope(), objectiveInput("missing-goal", "o", 0))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestObjectiveService_ListByGoal(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	ctx := context.Background()
	scope := testutil.TestScope()
	g1, err := svc.goals.Create(ctx, scope, domain.GoalInput{Description: "g1"})
	require.NoError(t, err)
	g2, err := svc.goals.Create(ctx, scope, domain.GoalInput{Description: "g2"})
	require.NoError(t, err)
	_, err = svc.objectives.Create(ctx, scope, objectiveInput(g1.ID, "a", 0))
	require.NoError(t, err)
	_, err = svc.objectives.Create(ctx, scope, objectiveInput(g2.ID, "b", 0))
	require.NoError(t, err)

	all, err := svc.objectives.List(ctx, scope, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only, err := svc.objectives.List(ctx, scope, g2.ID)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "b", only[0].Description)
}

func TestObjectiveService_UpdateNeverTouchesAchieved(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	ctx := context.Background()
	obj, user := svc.seedObjective(t)
	p1 := svc.addPlan(t, obj.ID, user.ID, "P1")
	svc.checkIn(t, p1.ID, 45)

	updated, err := svc.objectives.Update(ctx, testutil.TestScope(), obj.ID, objectiveInput(obj.GoalID, "renamed", 80))
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Description)
	assert.Equal(t, 80, updated.Progress)
	assert.Equal(t, 45, updated.AchievedPercentage)
}

func TestObjectiveService_DeleteWithPlansRequiresForce(t *testing.T) {
	svc := newServices(testutil.NewMemoryUoW())
	ctx := context.Background()
	obj, user := svc.seedObjective(t)
	p1 := svc.addPlan(t, obj.ID, user.ID, "P1")

	err := svc.objectives.Delete(ctx, testutil.TestScope(), obj.ID, false)
	require.ErrorIs(t, err, ErrHasChildren)

	require.NoError(t, svc.objectives.Delete(ctx, testutil.TestScope(), obj.ID, true))
	_, err = svc.objectives.GetByID(ctx, testutil.TestScope(), obj.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	plan := svc.plan(t, p1.ID)
	assert.Equal(t, obj.ID, plan.ObjectiveID, "forced delete leaves the plan dangling")
}
