package domain

import "time"

type Value struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Meaning     string    `json:"meaning"`
	CompanyID   string    `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (v Value) EntityID() string     { return v.ID }
func (v Value) OwnerCompany() string { return v.CompanyID }

// Statement is a company-wide text such as the vision or the mission. Each
// company holds at most one statement per collection.
type Statement struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CompanyID   string    `json:"companyId"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s Statement) EntityID() string     { return s.ID }
func (s Statement) OwnerCompany() string { return s.CompanyID }

// Overview bundles a company's vision, mission and values.
type Overview struct {
	Vision  *Statement
	Mission *Statement
	Values  []Value
}
