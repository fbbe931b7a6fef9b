package service

import (
	"context"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/repository"
	"github.com/alexanderramin/strata/internal/store"
)

const (
	UnknownGoal       = "Unknown Goal"
	UnknownObjective  = "Unknown Objective"
	UnknownActionPlan = "Unknown Action Plan"
	UnknownUser       = "Unknown User"
)

// Tree is a company's planning hierarchy as stored. Progress values are
// copied from the entities, never recomputed here.
type Tree struct {
	Goals []GoalNode
	// Objectives whose goal no longer exists.
	DanglingObjectives []ObjectiveNode
	// Action plans whose objective no longer exists.
	DanglingPlans []PlanNode
}

type GoalNode struct {
	Goal       domain.Goal
	Objectives []ObjectiveNode
}

type ObjectiveNode struct {
	Objective   domain.Objective
	ActionPlans []PlanNode
}

type PlanNode struct {
	Plan        domain.ActionPlan
	Responsible string
}

// NameResolver maps ids to display text for one company. Unknown ids resolve
// to a fixed placeholder.
type NameResolver struct {
	goals      map[string]string
	objectives map[string]string
	plans      map[string]string
	users      map[string]string
}

func (n *NameResolver) Goal(id string) string {
	return lookupName(n.goals, id, UnknownGoal)
}

func (n *NameResolver) Objective(id string) string {
	return lookupName(n.objectives, id, UnknownObjective)
}

func (n *NameResolver) ActionPlan(id string) string {
	return lookupName(n.plans, id, UnknownActionPlan)
}

func (n *NameResolver) User(id string) string {
	return lookupName(n.users, id, UnknownUser)
}

func lookupName(m map[string]string, id, fallback string) string {
	if name, ok := m[id]; ok && name != "" {
		return name
	}
	return fallback
}

type hierarchyService struct {
	uow store.UnitOfWork
}

func NewHierarchyService(uow store.UnitOfWork) HierarchyService {
	return &hierarchyService{uow: uow}
}

func (s *hierarchyService) GetActionPlan(ctx context.Context, scope domain.Scope, id string) (*domain.ActionPlan, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var p domain.ActionPlan
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		p, err = repository.GetScoped(plans, scope, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *hierarchyService) ListActionPlans(ctx context.Context, scope domain.Scope, objectiveID string) ([]domain.ActionPlan, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var out []domain.ActionPlan
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		plans, err := repository.LoadActionPlans(ctx, b)
		if err != nil {
			return err
		}
		out = plans.Filter(func(p domain.ActionPlan) bool {
			return scope.Owns(p.CompanyID) && (objectiveID == "" || p.ObjectiveID == objectiveID)
		})
		return nil
	})
	return out, err
}

func (s *hierarchyService) ListCheckIns(ctx context.Context, scope domain.Scope, actionPlanID string) ([]domain.CheckIn, error) {
	p, err := s.GetActionPlan(ctx, scope, actionPlanID)
	if err != nil {
		return nil, err
	}
	return p.CheckIns, nil
}

func (s *hierarchyService) Tree(ctx context.Context, scope domain.Scope) (*Tree, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var tree Tree
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		h, err := repository.LoadHierarchy(ctx, b)
		if err != nil {
			return err
		}
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		names := buildNames(scope, h, users)
		tree = buildTree(scope, h, names)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tree, nil
}

func (s *hierarchyService) Names(ctx context.Context, scope domain.Scope) (*NameResolver, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	var names *NameResolver
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, b store.Backend) error {
		h, err := repository.LoadHierarchy(ctx, b)
		if err != nil {
			return err
		}
		users, err := repository.LoadUsers(ctx, b)
		if err != nil {
			return err
		}
		names = buildNames(scope, h, users)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func buildNames(scope domain.Scope, h *repository.Hierarchy, users *repository.Table[domain.User]) *NameResolver {
	n := &NameResolver{
		goals:      map[string]string{},
		objectives: map[string]string{},
		plans:      map[string]string{},
		users:      map[string]string{},
	}
	for _, g := range repository.Scoped(h.Goals, scope) {
		n.goals[g.ID] = g.Description
	}
	for _, o := range repository.Scoped(h.Objectives, scope) {
		n.objectives[o.ID] = o.Description
	}
	for _, p := range repository.Scoped(h.ActionPlans, scope) {
		n.plans[p.ID] = p.Description
	}
	for _, u := range repository.Scoped(users, scope) {
		n.users[u.ID] = u.Name
	}
	return n
}

func buildTree(scope domain.Scope, h *repository.Hierarchy, names *NameResolver) Tree {
	plansByObjective := map[string][]PlanNode{}
	for _, p := range repository.Scoped(h.ActionPlans, scope) {
		plansByObjective[p.ObjectiveID] = append(plansByObjective[p.ObjectiveID], PlanNode{
			Plan:        p,
			Responsible: names.User(p.ResponsibleID),
		})
	}

	var tree Tree
	objectivesByGoal := map[string][]ObjectiveNode{}
	for _, o := range repository.Scoped(h.Objectives, scope) {
		node := ObjectiveNode{Objective: o, ActionPlans: plansByObjective[o.ID]}
		delete(plansByObjective, o.ID)
		if _, ok := names.goals[o.GoalID]; !ok {
			tree.DanglingObjectives = append(tree.DanglingObjectives, node)
			continue
		}
		objectivesByGoal[o.GoalID] = append(objectivesByGoal[o.GoalID], node)
	}

	for _, g := range repository.Scoped(h.Goals, scope) {
		tree.Goals = append(tree.Goals, GoalNode{Goal: g, Objectives: objectivesByGoal[g.ID]})
	}
	// Whatever is left points at objectives that are gone. Walk the table
	// again so the output keeps insertion order.
	for _, p := range repository.Scoped(h.ActionPlans, scope) {
		if _, ok := plansByObjective[p.ObjectiveID]; ok {
			tree.DanglingPlans = append(tree.DanglingPlans, PlanNode{Plan: p, Responsible: names.User(p.ResponsibleID)})
		}
	}
	return tree
}
