package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
vision: Be the default choice
mission: Make planning boring
values:
  - description: Candor
    meaning: Say the hard thing
users:
  - ref: ana
    name: Ana
    role: master
goals:
  - description: Grow revenue
    objectives:
      - description: Close 10 deals
        start_date: 2025-01-01
        end_date: 2025-12-31
        progress: 15
        action_plans:
          - description: Hire SDRs
            responsible: ana
            how_to: Two hires per quarter
            start_date: 2025-02-01
            end_date: 2025-06-30
            check_ins:
              - date: 2025-03-01
                description: first hire
                progress: 40
              - date: 2025-04-01
                description: slipped
                progress: 20
`

func validMinimalFile() *PlanFile {
	return &PlanFile{
		Goals: []GoalImport{{
			Description: "Goal",
			Objectives: []ObjectiveImport{{
				Description: "Objective",
				StartDate:   "2025-01-01",
				EndDate:     "2025-12-31",
			}},
		}},
	}
}

func TestParsePlanFile(t *testing.T) {
	pf, err := ParsePlanFile([]byte(samplePlan))
	require.NoError(t, err)
	assert.Equal(t, "Be the default choice", pf.Vision)
	require.Len(t, pf.Goals, 1)
	require.Len(t, pf.Goals[0].Objectives[0].ActionPlans, 1)
	assert.Len(t, pf.Goals[0].Objectives[0].ActionPlans[0].CheckIns, 2)
	assert.Empty(t, Validate(pf, nil))
}

func TestParsePlanFile_AcceptsJSON(t *testing.T) {
	pf, err := ParsePlanFile([]byte(`{"goals":[{"description":"From JSON"}]}`))
	require.NoError(t, err)
	require.Len(t, pf.Goals, 1)
	assert.Equal(t, "From JSON", pf.Goals[0].Description)
}

func TestLoadPlanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o644))

	pf, err := LoadPlanFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Make planning boring", pf.Mission)

	_, err = LoadPlanFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_ValidMinimal(t *testing.T) {
	assert.Empty(t, Validate(validMinimalFile(), nil))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	pf := &PlanFile{
		Values: []ValueImport{{Description: " "}},
		Users: []UserImport{
			{Ref: "ana", Name: "Ana", Role: "boss"},
			{Ref: "ana", Name: ""},
		},
		Goals: []GoalImport{{
			Description: "",
			Objectives: []ObjectiveImport{{
				Description: "o",
				StartDate:   "2025-06-01",
				EndDate:     "2025-01-01",
				ActionPlans: []ActionPlanImport{{
					Description: "p",
					Responsible: "ghost",
					StartDate:   "01/02/2025",
					EndDate:     "2025-03-01",
					CheckIns:    []CheckInImport{{Description: "", Date: ""}},
				}},
			}},
		}},
	}

	errs := Validate(pf, nil)
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")

	assert.Contains(t, joined, "values[0].description is required")
	assert.Contains(t, joined, `users[0].role: invalid value "boss"`)
	assert.Contains(t, joined, `users[1].ref: duplicate ref "ana"`)
	assert.Contains(t, joined, "users[1].name is required")
	assert.Contains(t, joined, "goals[0].description is required")
	assert.Contains(t, joined, "goals[0].objectives[0].end_date \"2025-01-01\" must not be before")
	assert.Contains(t, joined, "action_plans[0].how_to is required")
	assert.Contains(t, joined, `action_plans[0].responsible: "ghost"`)
	assert.Contains(t, joined, "action_plans[0].start_date: invalid date format")
	assert.Contains(t, joined, "check_ins[0].description is required")
	assert.Contains(t, joined, "check_ins[0].date is required")
}

func TestValidate_ExistingUserAccepted(t *testing.T) {
	pf := validMinimalFile()
	pf.Goals[0].Objectives[0].ActionPlans = []ActionPlanImport{{
		Description: "p", Responsible: "user-123", HowTo: "h", StartDate: "2025-01-01", EndDate: "2025-02-01",
	}}

	assert.NotEmpty(t, Validate(pf, nil))
	assert.Empty(t, Validate(pf, map[string]bool{"user-123": true}))
}

func TestConvert_LinksHierarchy(t *testing.T) {
	pf, err := ParsePlanFile([]byte(samplePlan))
	require.NoError(t, err)
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	gen := Convert(pf, "acme", now)
	require.Len(t, gen.Goals, 1)
	require.Len(t, gen.Objectives, 1)
	require.Len(t, gen.ActionPlans, 1)
	require.Len(t, gen.Users, 1)

	obj := gen.Objectives[0]
	plan := gen.ActionPlans[0]
	assert.Equal(t, gen.Goals[0].ID, obj.GoalID)
	assert.Equal(t, obj.ID, plan.ObjectiveID)
	assert.Equal(t, gen.Users[0].ID, plan.ResponsibleID, "user refs resolve to generated IDs")
	assert.Equal(t, 15, obj.Progress)
	assert.Equal(t, 0, obj.AchievedPercentage, "derived fields are left to the cascade")
	assert.Equal(t, 0, plan.Progress)
	require.Len(t, plan.CheckIns, 2)
	assert.Equal(t, plan.ID, plan.CheckIns[1].ActionPlanID)
	assert.Equal(t, "acme", plan.CompanyID)
	assert.Equal(t, "MASTER", string(gen.Users[0].Role))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), plan.CheckIns[0].Date)
}
