package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CompanyID string    `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) EntityID() string     { return u.ID }
func (u User) OwnerCompany() string { return u.CompanyID }
