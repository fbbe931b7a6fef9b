package domain

import "time"

type CheckIn struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Progress     int       `json:"progress"`
	ActionPlanID string    `json:"actionPlanId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ActionPlan is a concrete initiative toward an Objective. Progress is
// derived from CheckIns and never set directly.
type ActionPlan struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	ResponsibleID string    `json:"responsibleId"`
	HowTo         string    `json:"howTo"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	ObjectiveID   string    `json:"objectiveId"`
	Progress      int       `json:"progress"`
	CheckIns      []CheckIn `json:"checkIns"`
	CompanyID     string    `json:"companyId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p ActionPlan) EntityID() string     { return p.ID }
func (p ActionPlan) OwnerCompany() string { return p.CompanyID }

// LatestCheckIn returns the most recently appended check-in, or nil.
func (p *ActionPlan) LatestCheckIn() *CheckIn {
	if len(p.CheckIns) == 0 {
		return nil
	}
	return &p.CheckIns[len(p.CheckIns)-1]
}
