package service

import (
	"context"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/google/uuid"
)

type userService struct {
	uow store.UnitOfWork
}

func NewUserService(uow store.UnitOfWork) UserService {
	return &userService{uow: uow}
}

func (s *userService) Create(ctx context.Context, scope domain.Scope, in domain.UserInput) (*domain.User, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Check(&in); err != nil {
		return nil, err
	}
	u := domain.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CompanyID: scope.CompanyID,
		CreatedAt: time.Now().UTC(),
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		users.Put(u)
		return users.Flush(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.User, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var u domain.User
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		u, err = repository.GetScoped(users, scope, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) List(ctx context.Context, scope domain.Scope) ([]domain.User, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var out []domain.User
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		out = repository.Scoped(users, scope)
		return nil
	})
	return out, err
}
