package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/progress"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/google/uuid"
)

type cascadeService struct {
	uow      store.UnitOfWork
	observer UseCaseObserver
}

func NewCascadeService(uow store.UnitOfWork, observers ...UseCaseObserver) CascadeService {
	return &cascadeService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *cascadeService) CreateActionPlan(ctx context.Context, scope domain.Scope, in domain.ActionPlanInput) (plan *domain.ActionPlan, err error) {
	uc := startUseCase(s.observer, "create-action-plan", map[string]any{
		"company_id":   scope.CompanyID,
		"objective_id": in.ObjectiveID,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return nil, err
	}
	if err = domain.Check(&in); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		if err := checkPlanReferences(ctx, b, scope, in); err != nil {
			return err
		}

		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		created := domain.ActionPlan{
			ID:            uuid.New().String(),
			Description:   in.Description,
			ResponsibleID: in.ResponsibleID,
			HowTo:         in.HowTo,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			ObjectiveID:   in.ObjectiveID,
			Progress:      0,
			CheckIns:      []domain.CheckIn{},
			CompanyID:     scope.CompanyID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		plans.Put(created)
		if err := plans.Flush(ctx); err != nil {
			return err
		}

		obj, err := recomputeObjective(ctx, b, created.ObjectiveID, now)
		if err != nil {
			return err
		}
		uc.set("action_plan_id", created.ID)
		uc.set("achieved_pct", achievedOf(obj))
		plan = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *cascadeService) UpdateActionPlan(ctx context.Context, scope domain.Scope, id string, in domain.ActionPlanInput) (plan *domain.ActionPlan, err error) {
	uc := startUseCase(s.observer, "update-action-plan", map[string]any{
		"company_id":     scope.CompanyID,
		"action_plan_id": id,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return nil, err
	}
	if err = domain.Check(&in); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		current, err := repository.GetScoped(plans, scope, id)
		if err != nil {
			return err
		}
		if err := checkPlanReferences(ctx, b, scope, in); err != nil {
			return err
		}

		now := time.Now().UTC()
		formerObjectiveID := current.ObjectiveID
		current.Description = in.Description
		current.ResponsibleID = in.ResponsibleID
		current.HowTo = in.HowTo
		current.StartDate = in.StartDate
		current.EndDate = in.EndDate
		current.ObjectiveID = in.ObjectiveID
		current.UpdatedAt = now
		plans.Put(current)
		if err := plans.Flush(ctx); err != nil {
			return err
		}

		// A re-linked plan leaves one objective and joins another; both
		// averages change.
		if formerObjectiveID != current.ObjectiveID {
			uc.set("former_objective_id", formerObjectiveID)
			if _, err := recomputeObjective(ctx, b, formerObjectiveID, now); err != nil {
				return err
			}
		}
		obj, err := recomputeObjective(ctx, b, current.ObjectiveID, now)
		if err != nil {
			return err
		}
		uc.set("objective_id", current.ObjectiveID)
		uc.set("achieved_pct", achievedOf(obj))
		plan = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *cascadeService) AppendCheckIn(ctx context.Context, scope domain.Scope, actionPlanID string, in domain.CheckInInput) (plan *domain.ActionPlan, err error) {
	uc := startUseCase(s.observer, "append-check-in", map[string]any{
		"company_id":     scope.CompanyID,
		"action_plan_id": actionPlanID,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return nil, err
	}
	// Declined submissions stop here, before anything is loaded or written.
	if err = domain.Check(&in); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		current, err := repository.GetScoped(plans, scope, actionPlanID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		checkIn := domain.CheckIn{
			ID:           uuid.New().String(),
			Date:         in.Date,
			Description:  in.Description,
			Progress:     in.Progress,
			ActionPlanID: current.ID,
			CreatedAt:    now,
		}
		current.CheckIns = append(slices.Clone(current.CheckIns), checkIn)
		current.Progress = progress.DeriveActionPlanProgress(current.Progress, checkIn.Progress)
		current.UpdatedAt = now
		plans.Put(current)
		if err := plans.Flush(ctx); err != nil {
			return err
		}

		obj, err := recomputeObjective(ctx, b, current.ObjectiveID, now)
		if err != nil {
			return err
		}
		uc.set("objective_id", current.ObjectiveID)
		uc.set("plan_pct", current.Progress)
		uc.set("achieved_pct", achievedOf(obj))
		plan = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *cascadeService) DeleteActionPlan(ctx context.Context, scope domain.Scope, id string) (err error) {
	uc := startUseCase(s.observer, "delete-action-plan", map[string]any{
		"company_id":     scope.CompanyID,
		"action_plan_id": id,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		doomed, err := repository.GetScoped(plans, scope, id)
		if err != nil {
			return err
		}
		plans.Remove(doomed.ID)
		if err := plans.Flush(ctx); err != nil {
			return err
		}

		obj, err := recomputeObjective(ctx, b, doomed.ObjectiveID, time.Now().UTC())
		if err != nil {
			return err
		}
		uc.set("objective_id", doomed.ObjectiveID)
		uc.set("achieved_pct", achievedOf(obj))
		return nil
	})
}

func (s *cascadeService) UpdateObjectiveManualProgress(ctx context.Context, scope domain.Scope, objectiveID string, pct int) (obj *domain.Objective, err error) {
	uc := startUseCase(s.observer, "update-objective-progress", map[string]any{
		"company_id":   scope.CompanyID,
		"objective_id": objectiveID,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		current, err := repository.GetScoped(objectives, scope, objectiveID)
		if err != nil {
			return err
		}
		current.SetManualProgress(domain.ClampPercent(pct), time.Now().UTC())
		objectives.Put(current)
		if err := objectives.Flush(ctx); err != nil {
			return err
		}
		uc.set("manual_pct", current.Progress)
		obj = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *cascadeService) RecomputeObjective(ctx context.Context, scope domain.Scope, objectiveID string) (obj *domain.Objective, err error) {
	uc := startUseCase(s.observer, "recompute-objective", map[string]any{
		"company_id":   scope.CompanyID,
		"objective_id": objectiveID,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		if _, err := repository.GetScoped(objectives, scope, objectiveID); err != nil {
			return err
		}
		obj, err = recomputeObjective(ctx, b, objectiveID, time.Now().UTC())
		if err != nil {
			return err
		}
		uc.set("achieved_pct", achievedOf(obj))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// recomputeObjective derives objectiveID's achieved percentage from the
// action plans currently stored in b and writes it back. The plans are
// re-read rather than passed in so the result always reflects what the inner
// write committed. A missing objective is a dangling reference and yields
// (nil, nil).
func recomputeObjective(ctx context.Context, b store.Backend, objectiveID string, now time.Time) (*domain.Objective, error) {
	if objectiveID == "" {
		return nil, nil
	}
	plans, err := repository.LoadActionPlans(ctx, b)
	if err != nil {
		return nil, err
	}
	objectives, err := repository.LoadObjectives(ctx, b)
	if err != nil {
		return nil, err
	}
	obj, err := objectives.Get(objectiveID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	pct := progress.DeriveObjectiveAchievedPercentage(objectiveID, plans.All())
	if obj.AchievedPercentage != pct {
		obj.SetAchieved(pct, now)
		objectives.Put(obj)
		if err := objectives.Flush(ctx); err != nil {
			return nil, err
		}
	}
	return &obj, nil
}

// checkPlanReferences verifies that the objective and the responsible user
// named by in exist inside scope's company.
func checkPlanReferences(ctx context.Context, b store.Backend, scope domain.Scope, in domain.ActionPlanInput) error {
	objectives, err := repository.LoadObjectives(ctx, b)
	if err != nil {
		return err
	}
	if _, err := repository.GetReference(objectives, scope, in.ObjectiveID); err != nil {
		return fmt.Errorf("linking action plan: %w", err)
	}
	users, err := repository.LoadUsers(ctx, b)
	if err != nil {
		return err
	}
	if _, err := repository.GetReference(users, scope, in.ResponsibleID); err != nil {
		return fmt.Errorf("assigning responsible: %w", err)
	}
	return nil
}

func achievedOf(obj *domain.Objective) any {
	if obj == nil {
		return "dangling"
	}
	return obj.AchievedPercentage
}
