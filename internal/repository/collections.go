package repository

import (
	"context"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/store"
)

func LoadGoals(ctx context.Context, b store.Backend) (*Table[domain.Goal], error) {
	return LoadTable[domain.Goal](ctx, b, domain.CollectionGoals)
}

func LoadObjectives(ctx context.Context, b store.Backend) (*Table[domain.Objective], error) {
	return LoadTable[domain.Objective](ctx, b, domain.CollectionObjectives)
}

func LoadActionPlans(ctx context.Context, b store.Backend) (*Table[domain.ActionPlan], error) {
	return LoadTable[domain.ActionPlan](ctx, b, domain.CollectionActionPlans)
}

func LoadValues(ctx context.Context, b store.Backend) (*Table[domain.Value], error) {
	return LoadTable[domain.Value](ctx, b, domain.CollectionValues)
}

func LoadVisions(ctx context.Context, b store.Backend) (*Table[domain.Statement], error) {
	return LoadTable[domain.Statement](ctx, b, domain.CollectionVisions)
}

func LoadMissions(ctx context.Context, b store.Backend) (*Table[domain.Statement], error) {
	return LoadTable[domain.Statement](ctx, b, domain.CollectionMissions)
}

func LoadUsers(ctx context.Context, b store.Backend) (*Table[domain.User], error) {
	return LoadTable[domain.User](ctx, b, domain.CollectionUsers)
}

// Hierarchy is a consistent snapshot of the three planning collections.
type Hierarchy struct {
	Goals       *Table[domain.Goal]
	Objectives  *Table[domain.Objective]
	ActionPlans *Table[domain.ActionPlan]
}

// LoadHierarchy loads goals, objectives and action plans from b.
func LoadHierarchy(ctx context.Context, b store.Backend) (*Hierarchy, error) {
	goals, err := LoadGoals(ctx, b)
	if err != nil {
		return nil, err
	}
	objectives, err := LoadObjectives(ctx, b)
	if err != nil {
		return nil, err
	}
	plans, err := LoadActionPlans(ctx, b)
	if err != nil {
		return nil, err
	}
	return &Hierarchy{Goals: goals, Objectives: objectives, ActionPlans: plans}, nil
}
