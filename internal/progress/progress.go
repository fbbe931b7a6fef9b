// Package progress holds the pure derivations behind action-plan and
// objective percentages. Nothing here touches storage; callers pass explicit
// snapshots and get fresh values back.
package progress

import (
	"math"

	"github.com/alexanderramin/strata/internal/domain"
)

// DeriveActionPlanProgress returns the action plan's progress after a check-in
// reporting incoming is appended. Both inputs must already be in [0, 100].
// The result never drops below current.
func DeriveActionPlanProgress(current, incoming int) int {
	return min(100, max(current, incoming))
}

// ReplayCheckIns recomputes an action plan's progress from its full check-in
// history, starting from zero.
func ReplayCheckIns(checkIns []domain.CheckIn) int {
	pct := 0
	for _, c := range checkIns {
		pct = DeriveActionPlanProgress(pct, domain.ClampPercent(c.Progress))
	}
	return pct
}

// LinkedActionPlans returns the plans pointing at objectiveID, in input order.
// The returned slice is a copy; plans is not modified.
func LinkedActionPlans(objectiveID string, plans []domain.ActionPlan) []domain.ActionPlan {
	var linked []domain.ActionPlan
	for _, p := range plans {
		if p.ObjectiveID == objectiveID {
			linked = append(linked, p)
		}
	}
	return linked
}

// DeriveObjectiveAchievedPercentage averages the progress of every plan
// linked to objectiveID and rounds to the nearest integer in [0, 100].
// An objective with no linked plans has achieved 0.
func DeriveObjectiveAchievedPercentage(objectiveID string, plans []domain.ActionPlan) int {
	var sum, n int
	for _, p := range plans {
		if p.ObjectiveID != objectiveID {
			continue
		}
		sum += domain.ClampPercent(p.Progress)
		n++
	}
	if n == 0 {
		return 0
	}
	avg := math.Round(float64(sum) / float64(n))
	return domain.ClampPercent(int(avg))
}
