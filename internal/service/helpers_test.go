package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/alexanderramin/strata/internal/testutil"
	"github.com/stretchr/testify/require"
)

type services struct {
	uow        store.UnitOfWork
	goals      GoalService
	objectives ObjectiveService
	cascade    CascadeService
	hierarchy  HierarchyService
	strategy   StrategyService
	users      UserService
	imports    ImportService
}

func newServices(uow store.UnitOfWork, observers ...UseCaseObserver) *services {
	return &services{
		uow:        uow,
		goals:      NewGoalService(uow, observers...),
		objectives: NewObjectiveService(uow, observers...),
		cascade:    NewCascadeService(uow, observers...),
		hierarchy:  NewHierarchyService(uow),
		strategy:   NewStrategyService(uow, observers...),
		users:      NewUserService(uow),
		imports:    NewImportService(uow, observers...),
	}
}

// seedObjective creates a goal, one objective under it and a responsible
// user, all in testutil.TestCompany.
func (s *services) seedObjective(t *testing.T) (*domain.Objective, *domain.User) {
	t.Helper()
	ctx := context.Background()
	scope := testutil.TestScope()

	goal, err := s.goals.Create(ctx, scope, domain.GoalInput{Description: "Grow revenue"})
	require.NoError(t, err)
	obj, err := s.objectives.Create(ctx, scope, domain.ObjectiveInput{
		Description: "Close 10 enterprise deals",
		StartDate:   testutil.Date(2025, 1, 1),
		EndDate:     testutil.Date(2025, 12, 31),
		GoalID:      goal.ID,
	})
	require.NoError(t, err)
	user, err := s.users.Create(ctx, scope, domain.UserInput{Name: "Ana", Role: domain.RoleUser})
	require.NoError(t, err)
	return obj, user
}

func (s *services) addPlan(t *testing.T, objectiveID, responsibleID, description string) *domain.ActionPlan {
	t.Helper()
	plan, err := s.cascade.CreateActionPlan(context.Background(), testutil.TestScope(),
		testutil.PlanInput(objectiveID, responsibleID, description))
	require.NoError(t, err)
	return plan
}

func (s *services) checkIn(t *testing.T, planID string, pct int) *domain.ActionPlan {
	t.Helper()
	plan, err := s.cascade.AppendCheckIn(context.Background(), testutil.TestScope(), planID,
		testutil.CheckIn("weekly update", pct))
	require.NoError(t, err)
	return plan
}

func (s *services) objective(t *testing.T, id string) *domain.Objective {
	t.Helper()
	obj, err := s.objectives.GetByID(context.Background(), testutil.TestScope(), id)
	require.NoError(t, err)
	return obj
}

func (s *services) plan(t *testing.T, id string) *domain.ActionPlan {
	t.Helper()
	plan, err := s.hierarchy.GetActionPlan(context.Background(), testutil.TestScope(), id)
	require.NoError(t, err)
	return plan
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
