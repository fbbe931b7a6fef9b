package domain

import "time"

// Objective is a measurable target under a Goal. Progress is entered by a
// person; AchievedPercentage is derived from the linked action plans and is
// only ever written by the cascade.
type Objective struct {
	ID                 string    `json:"id"`
	Description        string    `json:"description"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	GoalID             string    `json:"goalId"`
	Progress           int       `json:"progress"`
	AchievedPercentage int       `json:"achievedPercentage"`
	CompanyID          string    `json:"companyId"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (o Objective) EntityID() string     { return o.ID }
func (o Objective) OwnerCompany() string { return o.CompanyID }

// SetManualProgress writes the manual progress field only.
func (o *Objective) SetManualProgress(pct int, now time.Time) {
	o.Progress = ClampPercent(pct)
	o.UpdatedAt = now
}

// SetAchieved writes the derived field only.
func (o *Objective) SetAchieved(pct int, now time.Time) {
	o.AchievedPercentage = ClampPercent(pct)
	o.UpdatedAt = now
}
