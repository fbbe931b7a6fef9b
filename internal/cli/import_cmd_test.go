package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliPlanFile = `
vision: Be the default choice
users:
  - ref: ana
    name: Ana
goals:
  - description: Grow revenue
    objectives:
      - description: Close deals
        start_date: 2025-01-01
        end_date: 2025-12-31
        action_plans:
          - description: Hire SDRs
            responsible: ana
            how_to: Two per quarter
            start_date: 2025-02-01
            end_date: 2025-06-30
            check_ins:
              - date: 2025-03-01
                description: first hire
                progress: 60
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)
	path := writePlanFile(t, cliPlanFile)

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 goal(s), 1 objective(s), 1 action plan(s), 1 check-in(s), 0 value(s), 1 user(s)")
	assert.Contains(t, out, "Close deals")
	assert.Contains(t, out, "60%")

	objs, err := app.Objectives.List(context.Background(), app.Scope, "")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, 60, objs[0].AchievedPercentage)
}

func TestImportCmd_ValidationError(t *testing.T) {
	app := testApp(t)
	path := writePlanFile(t, "goals:\n  - description: \"\"\n")

	_, err := executeCmd(t, app, "import", path)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "goals[0].description is required")
}

func TestImportCmd_RoleGated(t *testing.T) {
	app := testApp(t)
	path := writePlanFile(t, cliPlanFile)

	_, err := executeCmd(t, app, "--role", "user", "import", path)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestImportCmd_RequiresFile(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "import")
	require.Error(t, err)
}
