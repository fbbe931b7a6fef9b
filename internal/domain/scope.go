package domain

import "fmt"

// Scope is the caller context supplied by the auth collaborator: the company
// every query is partitioned by, and the caller's role.
type Scope struct {
	CompanyID string
	Role      Role
	UserID    string
}

// Validate checks that the scope names a company.
func (s Scope) Validate() error {
	if s.CompanyID == "" {
		return fmt.Errorf("company scope is required: %w", ErrInvalidInput)
	}
	return nil
}

// Owns reports whether an entity owned by companyID is visible in s.
func (s Scope) Owns(companyID string) bool {
	return s.CompanyID != "" && s.CompanyID == companyID
}

// Entity is anything stored in a keyed collection.
type Entity interface {
	EntityID() string
}

// CompanyOwned is an entity partitioned by company.
type CompanyOwned interface {
	Entity
	OwnerCompany() string
}

// BelongsTo filters items down to those owned by companyID, preserving order.
func BelongsTo[T CompanyOwned](items []T, companyID string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.OwnerCompany() == companyID {
			out = append(out, it)
		}
	}
	return out
}
