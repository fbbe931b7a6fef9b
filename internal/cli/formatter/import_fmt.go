package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/strata/internal/service"
)

// FormatImportResult summarizes an import and lists each imported objective
// with its freshly derived achieved percentage.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d goal(s), %d objective(s), %d action plan(s), %d check-in(s), %d value(s), %d user(s)\n",
		StyleGreen.Render("Imported"),
		res.GoalCount, res.ObjectiveCount, res.ActionPlanCount, res.CheckInCount, res.ValueCount, res.UserCount)
	if len(res.Objectives) == 0 {
		return b.String()
	}
	rows := make([][]string, 0, len(res.Objectives))
	for _, o := range res.Objectives {
		rows = append(rows, []string{
			TruncID(o.ID),
			o.Description,
			RenderProgress(o.Progress, barWidth),
			RenderProgress(o.AchievedPercentage, barWidth),
		})
	}
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ID", "OBJECTIVE", "MANUAL", "ACHIEVED"}, rows))
	return b.String()
}
