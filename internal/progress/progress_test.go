package progress

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/stretchr/testify/assert"
)

func plan(id, objectiveID string, pct int) domain.ActionPlan {
	return domain.ActionPlan{ID: id, ObjectiveID: objectiveID, Progress: pct}
}

func TestDeriveActionPlanProgress(t *testing.T) {
	cases := []struct {
		name              string
		current, incoming int
		want              int
	}{
		{"higher check-in raises", 40, 60, 60},
		{"lower check-in keeps current", 40, 20, 40},
		{"equal", 50, 50, 50},
		{"from zero", 0, 35, 35},
		{"full", 90, 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveActionPlanProgress(tc.current, tc.incoming))
		})
	}
}

// TestDeriveActionPlanProgress_Invariants property-tests monotonicity and
// the [0, 100] bound over random in-range inputs.
func TestDeriveActionPlanProgress_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 500; trial++ {
		current := rng.Intn(101)
		incoming := rng.Intn(101)
		got := DeriveActionPlanProgress(current, incoming)

		assert.GreaterOrEqual(t, got, current, "trial %d: progress regressed", trial)
		assert.GreaterOrEqual(t, got, incoming, "trial %d: below incoming", trial)
		assert.LessOrEqual(t, got, 100, "trial %d: above 100", trial)
		assert.Equal(t, min(100, max(current, incoming)), got)
	}
}

func TestReplayCheckIns(t *testing.T) {
	assert.Equal(t, 0, ReplayCheckIns(nil))
	checkIns := []domain.CheckIn{{Progress: 20}, {Progress: 70}, {Progress: 40}, {Progress: 130}}
	assert.Equal(t, 100, ReplayCheckIns(checkIns))
	assert.Equal(t, 70, ReplayCheckIns(checkIns[:3]))
}

func TestDeriveObjectiveAchievedPercentage_EmptySetIsZero(t *testing.T) {
	assert.Equal(t, 0, DeriveObjectiveAchievedPercentage("obj-1", nil))
	others := []domain.ActionPlan{plan("p1", "obj-2", 80)}
	assert.Equal(t, 0, DeriveObjectiveAchievedPercentage("obj-1", others))
}

func TestDeriveObjectiveAchievedPercentage_Average(t *testing.T) {
	plans := []domain.ActionPlan{
		plan("p1", "obj-1", 40),
		plan("p2", "obj-1", 60),
		plan("p3", "obj-2", 100),
	}
	assert.Equal(t, 50, DeriveObjectiveAchievedPercentage("obj-1", plans))
	assert.Equal(t, 100, DeriveObjectiveAchievedPercentage("obj-2", plans))
}

func TestDeriveObjectiveAchievedPercentage_Rounds(t *testing.T) {
	// (10 + 15 + 20 + 20) / 4 = 16.25
	plans := []domain.ActionPlan{
		plan("a", "o", 10), plan("b", "o", 15), plan("c", "o", 20), plan("d", "o", 20),
	}
	assert.Equal(t, 16, DeriveObjectiveAchievedPercentage("o", plans))

	// (33 + 34) / 2 = 33.5
	assert.Equal(t, 34, DeriveObjectiveAchievedPercentage("o", []domain.ActionPlan{plan("a", "o", 33), plan("b", "o", 34)}))
}

func TestDeriveObjectiveAchievedPercentage_IdempotentAndPure(t *testing.T) {
	plans := []domain.ActionPlan{plan("p1", "o", 25), plan("p2", "o", 75)}
	snapshot := append([]domain.ActionPlan(nil), plans...)

	first := DeriveObjectiveAchievedPercentage("o", plans)
	second := DeriveObjectiveAchievedPercentage("o", plans)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, plans, "inputs must not be mutated")
}

func TestDeriveObjectiveAchievedPercentage_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(10)
		plans := make([]domain.ActionPlan, n)
		lo, hi := 100, 0
		for i := range plans {
			pct := rng.Intn(101)
			plans[i] = plan("p", "o", pct)
			lo = min(lo, pct)
			hi = max(hi, pct)
		}
		got := DeriveObjectiveAchievedPercentage("o", plans)
		if n == 0 {
			assert.Equal(t, 0, got, "trial %d", trial)
			continue
		}
		assert.GreaterOrEqual(t, got, lo, "trial %d: average below min", trial)
		assert.LessOrEqual(t, got, hi, "trial %d: average above max", trial)
	}
}

func TestLinkedActionPlans(t *testing.T) {
	plans := []domain.ActionPlan{plan("p1", "o1", 0), plan("p2", "o2", 0), plan("p3", "o1", 0)}
	linked := LinkedActionPlans("o1", plans)
	assert.Len(t, linked, 2)
	assert.Equal(t, "p1", linked[0].ID)
	assert.Equal(t, "p3", linked[1].ID)
	assert.Nil(t, LinkedActionPlans("missing", plans))
}
