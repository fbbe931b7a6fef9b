package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/google/uuid"
)

type strategyService struct {
	uow      store.UnitOfWork
	observer UseCaseObserver
}

func NewStrategyService(uow store.UnitOfWork, observers ...UseCaseObserver) StrategyService {
	return &strategyService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *strategyService) AddValue(ctx context.Context, scope domain.Scope, in domain.ValueInput) (*domain.Value, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := domain.Value{
		ID:          uuid.New().String(),
		Description: in.Description,
		Meaning:     in.Meaning,
		CompanyID:   scope.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		values, err := repository.LoadValues(ctx, b)
		if err != nil {
			return err
		}
		values.Put(v)
		return values.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *strategyService) UpdateValue(ctx context.Context, scope domain.Scope, id string, in domain.ValueInput) (*domain.Value, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}
	var v domain.Value
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		values, err := repository.LoadValues(ctx, b)
		if err != nil {
			return err
		}
		v, err = repository.GetScoped(values, scope, id)
		if err != nil {
			return err
		}
		v.Description = in.Description
		v.Meaning = in.Meaning
		v.UpdatedAt = time.Now().UTC()
		values.Put(v)
		return values.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *strategyService) DeleteValue(ctx context.Context, scope domain.Scope, id string) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		values, err := repository.LoadValues(ctx, b)
		if err != nil {
			return err
		}
		if _, err := repository.GetScoped(values, scope, id); err != nil {
			return err
		}
		values.Remove(id)
		return values.Flush(ctx)
	})
}

func (s *strategyService) ListValues(ctx context.Context, scope domain.Scope) ([]domain.Value, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var out []domain.Value
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		values, err := repository.LoadValues(ctx, b)
		if err != nil {
			return err
		}
		out = repository.Scoped(values, scope)
		return nil
	})
	return out, err
}

func (s *strategyService) SetVision(ctx context.Context, scope domain.Scope, description string) (st *domain.Statement, err error) {
	uc := startUseCase(s.observer, "set-vision", map[string]any{"company_id": scope.CompanyID})
	defer func() { uc.finish(ctx, err) }()
	return s.upsertStatement(ctx, scope, domain.CollectionVisions, description)
}

func (s *strategyService) SetMission(ctx context.Context, scope domain.Scope, description string) (st *domain.Statement, err error) {
	uc := startUseCase(s.observer, "set-mission", map[string]any{"company_id": scope.CompanyID})
	defer func() { uc.finish(ctx, err) }()
	return s.upsertStatement(ctx, scope, domain.CollectionMissions, description)
}

func (s *strategyService) upsertStatement(ctx context.Context, scope domain.Scope, name domain.Collection, description string) (*domain.Statement, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}

	var st *domain.Statement
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		var err error
		st, err = writeStatement(ctx, b, scope, name, description, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// writeStatement keeps at most one statement per company in name: the
// existing one is rewritten in place, otherwise a new one is appended.
func writeStatement(ctx context.Context, b store.Backend, scope domain.Scope, name domain.Collection, description string, now time.Time) (*domain.Statement, error) {
	statements, err := repository.LoadTable[domain.Statement](ctx, b, name)
	if err != nil {
		return nil, err
	}
	var st domain.Statement
	if existing := repository.Scoped(statements, scope); len(existing) > 0 {
		st = existing[0]
	} else {
		st = domain.Statement{ID: uuid.New().String(), CompanyID: scope.CompanyID}
	}
	st.Description = description
	st.UpdatedAt = now
	statements.Put(st)
	if err := statements.Flush(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *strategyService) Overview(ctx context.Context, scope domain.Scope) (*domain.Overview, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var ov domain.Overview
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		visions, err := repository.LoadVisions(ctx, b)
		if err != nil {
			return err
		}
		missions, err := repository.LoadMissions(ctx, b)
		if err != nil {
			return err
		}
		values, err := repository.LoadValues(ctx, b)
		if err != nil {
			return err
		}
		ov.Vision = firstScoped(visions, scope)
		ov.Mission = firstScoped(missions, scope)
		ov.Values = repository.Scoped(values, scope)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ov, nil
}

func firstScoped(t *repository.Table[domain.Statement], scope domain.Scope) *domain.Statement {
	found := repository.Scoped(t, scope)
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}
