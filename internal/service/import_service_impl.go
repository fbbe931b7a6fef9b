package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/importer"
	"github.com/alexanderramin/strata/internal/progress"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
)

type importService struct {
	uow      store.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow store.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, scope domain.Scope, path string) (*ImportResult, error) {
	pf, err := importer.LoadPlanFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportPlan(ctx, scope, pf)
}

// ImportPlan validates pf against the company's existing users and writes
// every entity it describes. Action plan progress is replayed from the
// imported check-ins and each objective's achieved percentage is derived
// before the transaction commits, so a failed import leaves nothing behind.
func (s *importService) ImportPlan(ctx context.Context, scope domain.Scope, pf *importer.PlanFile) (res *ImportResult, err error) {
	uc := startUseCase(s.observer, "import-plan", map[string]any{"company_id": scope.CompanyID})
	defer func() { uc.finish(ctx, err) }()

	if err := scope.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, b store.Backend) error {
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		known := make(map[string]bool)
		for _, u := range repository.Scoped(users, scope) {
			known[u.ID] = true
		}
		if errs := importer.Validate(pf, known); len(errs) > 0 {
			return formatValidationErrors(errs)
		}

		gen := importer.Convert(pf, scope.CompanyID, now)
		for i := range gen.ActionPlans {
			gen.ActionPlans[i].Progress = progress.ReplayCheckIns(gen.ActionPlans[i].CheckIns)
		}

		if err := appendAll(ctx, b, domain.CollectionUsers, gen.Users); err != nil {
			return err
		}
		if err := appendAll(ctx, b, domain.CollectionValues, gen.Values); err != nil {
			return err
		}
		if err := appendAll(ctx, b, domain.CollectionGoals, gen.Goals); err != nil {
			return err
		}
		if err := appendAll(ctx, b, domain.CollectionObjectives, gen.Objectives); err != nil {
			return err
		}
		if err := appendAll(ctx, b, domain.CollectionActionPlans, gen.ActionPlans); err != nil {
			return err
		}
		if gen.Vision != "" {
			if _, err := writeStatement(ctx, b, scope, domain.CollectionVisions, gen.Vision, now); err != nil {
				return err
			}
		}
		if gen.Mission != "" {
			if _, err := writeStatement(ctx, b, scope, domain.CollectionMissions, gen.Mission, now); err != nil {
				return err
			}
		}

		res = &ImportResult{
			GoalCount:       len(gen.Goals),
			ObjectiveCount:  len(gen.Objectives),
			ActionPlanCount: len(gen.ActionPlans),
			ValueCount:      len(gen.Values),
			UserCount:       len(gen.Users),
		}
		for _, p := range gen.ActionPlans {
			res.CheckInCount += len(p.CheckIns)
		}
		for _, o := range gen.Objectives {
			obj, err := recomputeObjective(ctx, b, o.ID, now)
			if err != nil {
				return fmt.Errorf("recomputing objective %q: %w", o.Description, err)
			}
			if obj != nil {
				res.Objectives = append(res.Objectives, *obj)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.set("goals", res.GoalCount)
	uc.set("objectives", res.ObjectiveCount)
	uc.set("action_plans", res.ActionPlanCount)
	return res, nil
}

func appendAll[T domain.Entity](ctx context.Context, b store.Backend, name domain.Collection, items []T) error {
	if len(items) == 0 {
		return nil
	}
	t, err := repository.LoadTable[T](ctx, b, name)
	if err != nil {
		return err
	}
	for _, it := range items {
		t.Put(it)
	}
	if err := t.Flush(ctx); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// formatValidationErrors folds every problem into one error that still
// matches domain.ErrInvalidInput.
func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput)
}
