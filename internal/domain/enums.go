package domain

import "strings"

// Role is the caller's role inside its company.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMaster Role = "MASTER"
	RoleUser   Role = "USER"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleMaster: true,
	RoleUser:   true,
}

// ParseRole normalizes s into a Role. Unknown values fall back to RoleUser.
func ParseRole(s string) Role {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if ValidRoles[r] {
		return r
	}
	return RoleUser
}

// CanManageStrategy reports whether the role may edit values, vision,
// mission and company users.
func (r Role) CanManageStrategy() bool {
	return r == RoleAdmin || r == RoleMaster
}

// Collection names one entity collection in the key-collection store.
type Collection string

const (
	CollectionGoals       Collection = "goals"
	CollectionObjectives  Collection = "objectives"
	CollectionActionPlans Collection = "action_plans"
	CollectionValues      Collection = "values"
	CollectionVisions     Collection = "visions"
	CollectionMissions    Collection = "missions"
	CollectionUsers       Collection = "users"
)

// AllCollections lists every collection the store knows about.
var AllCollections = []Collection{
	CollectionGoals,
	CollectionObjectives,
	CollectionActionPlans,
	CollectionValues,
	CollectionVisions,
	CollectionMissions,
	CollectionUsers,
}
