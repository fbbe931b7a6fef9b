package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/google/uuid"
)

const (
	TestCompany  = "acme"
	OtherCompany = "globex"
)

// TestScope returns an ADMIN scope for TestCompany.
func TestScope() domain.Scope {
	return domain.Scope{CompanyID: TestCompany, Role: domain.RoleAdmin, UserID: "admin"}
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Seed replaces collection name with items, bypassing the services. Use it
// for states the services refuse to produce, such as dangling references.
func Seed[T any](t *testing.T, uow store.UnitOfWork, name domain.Collection, items ...T) {
	t.Helper()
	err := uow.WithinTx(context.Background(), func(ctx context.Context, b store.Backend) error {
		return store.Open[T](b, name).ReplaceAll(ctx, items)
	})
	if err != nil {
		t.Fatalf("seeding %s: %v", name, err)
	}
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalCompany(companyID string) GoalOption {
	return func(g *domain.Goal) {
		g.CompanyID = companyID
	}
}

func NewTestGoal(description string, opts ...GoalOption) domain.Goal {
	now := time.Now().UTC()
	g := domain.Goal{
		ID:          uuid.New().String(),
		Description: description,
		CompanyID:   TestCompany,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Objective options
type ObjectiveOption func(*domain.Objective)

func WithManualProgress(pct int) ObjectiveOption {
	return func(o *domain.Objective) {
		o.Progress = pct
	}
}

func WithAchieved(pct int) ObjectiveOption {
	return func(o *domain.Objective) {
		o.AchievedPercentage = pct
	}
}

func WithObjectiveCompany(companyID string) ObjectiveOption {
	return func(o *domain.Objective) {
		o.CompanyID = companyID
	}
}

func NewTestObjective(goalID, description string, opts ...ObjectiveOption) domain.Objective {
	now := time.Now().UTC()
	o := domain.Objective{
		ID:          uuid.New().String(),
		Description: description,
		StartDate:   Date(2025, time.January, 1),
		EndDate:     Date(2025, time.December, 31),
		GoalID:      goalID,
		CompanyID:   TestCompany,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ActionPlan options
type ActionPlanOption func(*domain.ActionPlan)

func WithPlanProgress(pct int) ActionPlanOption {
	return func(p *domain.ActionPlan) {
		p.Progress = pct
	}
}

func WithPlanCompany(companyID string) ActionPlanOption {
	return func(p *domain.ActionPlan) {
		p.CompanyID = companyID
	}
}

func WithCheckIns(checkIns ...domain.CheckIn) ActionPlanOption {
	return func(p *domain.ActionPlan) {
		p.CheckIns = checkIns
	}
}

func NewTestActionPlan(objectiveID, responsibleID, description string, opts ...ActionPlanOption) domain.ActionPlan {
	now := time.Now().UTC()
	p := domain.ActionPlan{
		ID:            uuid.New().String(),
		Description:   description,
		ResponsibleID: responsibleID,
		HowTo:         "weekly review",
		StartDate:     Date(2025, time.February, 1),
		EndDate:       Date(2025, time.June, 30),
		ObjectiveID:   objectiveID,
		CheckIns:      []domain.CheckIn{},
		CompanyID:     TestCompany,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func NewTestUser(name string, role domain.Role) domain.User {
	return domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		CompanyID: TestCompany,
		CreatedAt: time.Now().UTC(),
	}
}

// PlanInput returns a valid ActionPlanInput for objectiveID.
func PlanInput(objectiveID, responsibleID, description string) domain.ActionPlanInput {
	return domain.ActionPlanInput{
		Description:   description,
		ResponsibleID: responsibleID,
		HowTo:         "weekly review",
		StartDate:     Date(2025, time.February, 1),
		EndDate:       Date(2025, time.June, 30),
		ObjectiveID:   objectiveID,
	}
}

// CheckIn returns a valid CheckInInput at pct.
func CheckIn(description string, pct int) domain.CheckInInput {
	return domain.CheckInInput{
		Date:        Date(2025, time.March, 15),
		Description: description,
		Progress:    pct,
	}
}
