package service

import (
	"context"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/importer"
)

type GoalService interface {
	Create(ctx context.Context, scope domain.Scope, in domain.GoalInput) (*domain.Goal, error)
	GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.Goal, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Goal, error)
	Update(ctx context.Context, scope domain.Scope, id string, in domain.GoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, scope domain.Scope, id string, force bool) error
}

type ObjectiveService interface {
	Create(ctx context.Context, scope domain.Scope, in domain.ObjectiveInput) (*domain.Objective, error)
	GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.Objective, error)
	// List returns the company's objectives, narrowed to goalID when it is non-empty.
	List(ctx context.Context, scope domain.Scope, goalID string) ([]domain.Objective, error)
	// Update replaces the editable fields, manual progress included. The
	// achieved percentage is never touched.
	Update(ctx context.Context, scope domain.Scope, id string, in domain.ObjectiveInput) (*domain.Objective, error)
	Delete(ctx context.Context, scope domain.Scope, id string, force bool) error
}

// CascadeService is the only writer of derived progress. Every method that
// changes an action plan's progress or its objective link recomputes the
// affected objectives before returning.
type CascadeService interface {
	CreateActionPlan(ctx context.Context, scope domain.Scope, in domain.ActionPlanInput) (*domain.ActionPlan, error)
	UpdateActionPlan(ctx context.Context, scope domain.Scope, id string, in domain.ActionPlanInput) (*domain.ActionPlan, error)
	AppendCheckIn(ctx context.Context, scope domain.Scope, actionPlanID string, in domain.CheckInInput) (*domain.ActionPlan, error)
	DeleteActionPlan(ctx context.Context, scope domain.Scope, id string) error
	UpdateObjectiveManualProgress(ctx context.Context, scope domain.Scope, objectiveID string, pct int) (*domain.Objective, error)
	RecomputeObjective(ctx context.Context, scope domain.Scope, objectiveID string) (*domain.Objective, error)
}

// HierarchyService answers company-scoped read queries over the planning tree.
type HierarchyService interface {
	GetActionPlan(ctx context.Context, scope domain.Scope, id string) (*domain.ActionPlan, error)
	// ListActionPlans returns the company's plans, narrowed to objectiveID when it is non-empty.
	ListActionPlans(ctx context.Context, scope domain.Scope, objectiveID string) ([]domain.ActionPlan, error)
	ListCheckIns(ctx context.Context, scope domain.Scope, actionPlanID string) ([]domain.CheckIn, error)
	Tree(ctx context.Context, scope domain.Scope) (*Tree, error)
	Names(ctx context.Context, scope domain.Scope) (*NameResolver, error)
}

type StrategyService interface {
	AddValue(ctx context.Context, scope domain.Scope, in domain.ValueInput) (*domain.Value, error)
	UpdateValue(ctx context.Context, scope domain.Scope, id string, in domain.ValueInput) (*domain.Value, error)
	DeleteValue(ctx context.Context, scope domain.Scope, id string) error
	ListValues(ctx context.Context, scope domain.Scope) ([]domain.Value, error)
	SetVision(ctx context.Context, scope domain.Scope, description string) (*domain.Statement, error)
	SetMission(ctx context.Context, scope domain.Scope, description string) (*domain.Statement, error)
	Overview(ctx context.Context, scope domain.Scope) (*domain.Overview, error)
}

type UserService interface {
	Create(ctx context.Context, scope domain.Scope, in domain.UserInput) (*domain.User, error)
	GetByID(ctx context.Context, scope domain.Scope, id string) (*domain.User, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.User, error)
}

// ImportResult summarizes what an import wrote.
type ImportResult struct {
	GoalCount       int
	ObjectiveCount  int
	ActionPlanCount int
	CheckInCount    int
	ValueCount      int
	UserCount       int
	// Objectives holds every imported objective with its derived achieved
	// percentage already filled in.
	Objectives []domain.Objective
}

// ImportService loads a whole strategic plan into a company in one transaction.
type ImportService interface {
	ImportFile(ctx context.Context, scope domain.Scope, path string) (*ImportResult, error)
	ImportPlan(ctx context.Context, scope domain.Scope, pf *importer.PlanFile) (*ImportResult, error)
}
