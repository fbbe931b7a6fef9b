package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/google/uuid"
)

type objectiveService struct {
	uow      store.UnitOfWork
	observer UseCaseObserver
}

func NewObjectiveService(uow store.UnitOfWork, observers ...UseCaseObserver) ObjectiveService {
	return &objectiveService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *objectiveService) Create(ctx context.Context, scope domain.Scope, in domain.ObjectiveInput) (*domain.Objective, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := domain.Objective{
		ID:                 uuid.New().String(),
		Description:        in.Description,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		GoalID:             in.GoalID,
		Progress:           in.Progress,
		AchievedPercentage: 0,
		CompanyID:          scope.CompanyID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		if _, err := repository.GetReference(goals, scope, in.GoalID); err != nil {
			return fmt.Errorf("linking objective: %w", err)
		}
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		objectives.Put(o)
		return objectives.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *objectiveService) GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.Objective, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var o domain.Objective
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		o, err = repository.GetScoped(objectives, scope, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *objectiveService) List(ctx context.Context, scope domain.Scope, goalID string) ([]domain.Objective, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var out []domain.Objective
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		out = objectives.Filter(func(o domain.Objective) bool {
			return scope.Owns(o.CompanyID) && (goalID == "" || o.GoalID == goalID)
		})
		return nil
	})
	return out, err
}

func (s *objectiveService) Update(ctx context.Context, scope domain.Scope, id string, in domain.ObjectiveInput) (*domain.Objective, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}
	var o domain.Objective
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		o, err = repository.GetScoped(objectives, scope, id)
		if err != nil {
			return err
		}
		if in.GoalID != o.GoalID {
			goals, err := repository.LoadGoals(ctx, b)
			if err != nil {
				return err
			}
			if _, err := repository.GetReference(goals, scope, in.GoalID); err != nil {
				return fmt.Errorf("linking objective: %w", err)
			}
		}
		now := time.Now().UTC()
		o.Description = in.Description
		o.StartDate = in.StartDate
		o.EndDate = in.EndDate
		o.GoalID = in.GoalID
		o.SetManualProgress(in.Progress, now)
		objectives.Put(o)
		return objectives.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete removes an objective. Linked action plans block the delete unless
// force is set; forced deletes leave them dangling and later cascades on
// those plans skip the missing objective.
func (s *objectiveService) Delete(ctx context.Context, scope domain.Scope, id string, force bool) (err error) {
	uc := startUseCase(s.observer, "delete-objective", map[string]any{
		"company_id":   scope.CompanyID,
		"objective_id": id,
		"force":        force,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		if _, err := repository.GetScoped(objectives, scope, id); err != nil {
			return err
		}
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		children := len(plans.Filter(func(p domain.ActionPlan) bool { return p.ObjectiveID == id }))
		uc.set("action_plans", children)
		if children > 0 && !force {
			return fmt.Errorf("objective %q has %d action plan(s) (use --force to override): %w", id, children, ErrHasChildren)
		}
		objectives.Remove(id)
		return objectives.Flush(ctx)
	})
}
