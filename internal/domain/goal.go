package domain

import "time"

type Goal struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CompanyID   string    `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (g Goal) EntityID() string     { return g.ID }
func (g Goal) OwnerCompany() string { return g.CompanyID }
