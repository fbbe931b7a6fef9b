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

type goalService struct {
	uow      store.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(uow store.UnitOfWork, observers ...UseCaseObserver) GoalService {
	return &goalService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Create(ctx context.Context, scope domain.Scope, in domain.GoalInput) (*domain.Goal, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	g := domain.Goal{
		ID:          uuid.New().String(),
		Description: in.Description,
		CompanyID:   scope.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		goals.Put(g)
		return goals.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *goalService) GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.Goal, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var g domain.Goal
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		g, err = repository.GetScoped(goals, scope, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *goalService) List(ctx context.Context, scope domain.Scope) ([]domain.Goal, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var out []domain.Goal
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		out = repository.Scoped(goals, scope)
		return nil
	})
	return out, err
}

func (s *goalService) Update(ctx context.Context, scope domain.Scope, id string, in domain.GoalInput) (*domain.Goal, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}
	var g domain.Goal
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		g, err = repository.GetScoped(goals, scope, id)
		if err != nil {
			return err
		}
		g.Description = in.Description
		g.UpdatedAt = time.Now().UTC()
		goals.Put(g)
		return goals.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Delete removes a goal. A goal that still has objectives is refused unless
// force is set; forced deletes leave the objectives pointing at a goal that no
// longer exists.
func (s *goalService) Delete(ctx context.Context, scope domain.Scope, id string, force bool) (err error) {
	uc := startUseCase(s.observer, "delete-goal", map[string]any{
		"company_id": scope.CompanyID,
		"goal_id":    id,
		"force":      force,
	})
	defer func() { uc.finish(ctx, err) }()

	if err = scope.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		goals, err := repository.LoadGoals(ctx, b)
		if err != nil {
			return err
		}
		if _, err := repository.GetScoped(goals, scope, id); err != nil {
			return err
		}
		objectives, err := repository.LoadObjectives(ctx, b)
		if err != nil {
			return err
		}
		children := len(objectives.Filter(func(o domain.Objective) bool { return o.GoalID == id }))
		uc.set("objectives", children)
		if children > 0 && !force {
			return fmt.Errorf("goal %q has %d objective(s) (use --force to override): %w", id, children, ErrHasChildren)
		}
		goals.Remove(id)
		return goals.Flush(ctx)
	})
}
