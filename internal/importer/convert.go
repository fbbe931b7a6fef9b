package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/google/uuid"
)

// Generated holds the domain entities built from a validated PlanFile.
// Derived progress is left at zero for the caller's cascade to fill in.
type Generated struct {
	Vision      string
	Mission     string
	Values      []domain.Value
	Users       []domain.User
	Goals       []domain.Goal
	Objectives  []domain.Objective
	ActionPlans []domain.ActionPlan
}

// Convert transforms a validated PlanFile into entities owned by companyID.
// Call Validate first; Convert assumes the file is valid.
func Convert(pf *PlanFile, companyID string, now time.Time) *Generated {
	gen := &Generated{
		Vision:  strings.TrimSpace(pf.Vision),
		Mission: strings.TrimSpace(pf.Mission),
	}

	for _, v := range pf.Values {
		gen.Values = append(gen.Values, domain.Value{
			ID:          uuid.New().String(),
			Description: strings.TrimSpace(v.Description),
			Meaning:     strings.TrimSpace(v.Meaning),
			CompanyID:   companyID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	userIDs := make(map[string]string) // ref -> UUID
	for _, u := range pf.Users {
		id := uuid.New().String()
		userIDs[u.Ref] = id
		gen.Users = append(gen.Users, domain.User{
			ID:        id,
			Name:      strings.TrimSpace(u.Name),
			Email:     strings.TrimSpace(u.Email),
			Role:      domain.ParseRole(u.Role),
			CompanyID: companyID,
			CreatedAt: now,
		})
	}

	for _, g := range pf.Goals {
		goal := domain.Goal{
			ID:          uuid.New().String(),
			Description: strings.TrimSpace(g.Description),
			CompanyID:   companyID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		gen.Goals = append(gen.Goals, goal)

		for _, o := range g.Objectives {
			obj := domain.Objective{
				ID:          uuid.New().String(),
				Description: strings.TrimSpace(o.Description),
				StartDate:   mustDate(o.StartDate),
				EndDate:     mustDate(o.EndDate),
				GoalID:      goal.ID,
				Progress:    domain.ClampPercent(o.Progress),
				CompanyID:   companyID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			gen.Objectives = append(gen.Objectives, obj)

			for _, p := range o.ActionPlans {
				gen.ActionPlans = append(gen.ActionPlans, convertPlan(p, obj.ID, companyID, userIDs, now))
			}
		}
	}

	return gen
}

func convertPlan(p ActionPlanImport, objectiveID, companyID string, userIDs map[string]string, now time.Time) domain.ActionPlan {
	responsible := p.Responsible
	if id, ok := userIDs[responsible]; ok {
		responsible = id
	}
	plan := domain.ActionPlan{
		ID:            uuid.New().String(),
		Description:   strings.TrimSpace(p.Description),
		ResponsibleID: responsible,
		HowTo:         strings.TrimSpace(p.HowTo),
		StartDate:     mustDate(p.StartDate),
		EndDate:       mustDate(p.EndDate),
		ObjectiveID:   objectiveID,
		CheckIns:      make([]domain.CheckIn, 0, len(p.CheckIns)),
		CompanyID:     companyID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, c := range p.CheckIns {
		plan.CheckIns = append(plan.CheckIns, domain.CheckIn{
			ID:           uuid.New().String(),
			Date:         mustDate(c.Date),
			Description:  strings.TrimSpace(c.Description),
			Progress:     domain.ClampPercent(c.Progress),
			ActionPlanID: plan.ID,
			CreatedAt:    now,
		})
	}
	return plan
}

// mustDate parses a date Validate has already accepted.
func mustDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}
