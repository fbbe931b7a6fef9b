package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/strata/internal/domain"
	"github.com/alexanderramin/strata/internal/service"
)

const barWidth = 10

func FormatGoalList(goals []domain.Goal) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{TruncID(g.ID), g.Description})
	}
	return RenderTable([]string{"ID", "GOAL"}, rows)
}

// FormatObjectiveList renders objectives with both progress figures. names
// resolves the goal column.
func FormatObjectiveList(objectives []domain.Objective, names *service.NameResolver) string {
	rows := make([][]string, 0, len(objectives))
	for _, o := range objectives {
		rows = append(rows, []string{
			TruncID(o.ID),
			o.Description,
			names.Goal(o.GoalID),
			DateRange(o.StartDate, o.EndDate),
			RenderProgress(o.Progress, barWidth),
			RenderProgress(o.AchievedPercentage, barWidth),
		})
	}
	return RenderTable([]string{"ID", "OBJECTIVE", "GOAL", "DATES", "MANUAL", "ACHIEVED"}, rows)
}

func FormatActionPlanList(plans []domain.ActionPlan, names *service.NameResolver) string {
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Description,
			names.Objective(p.ObjectiveID),
			names.User(p.ResponsibleID),
			DateRange(p.StartDate, p.EndDate),
			RenderProgress(p.Progress, barWidth),
		})
	}
	return RenderTable([]string{"ID", "ACTION PLAN", "OBJECTIVE", "RESPONSIBLE", "DATES", "PROGRESS"}, rows)
}

// FormatActionPlan renders one plan with its how-to and check-in history.
func FormatActionPlan(p *domain.ActionPlan, names *service.NameResolver) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Bold(p.Description))
	fmt.Fprintf(&b, "%s %s\n", Dim("Objective:  "), names.Objective(p.ObjectiveID))
	fmt.Fprintf(&b, "%s %s\n", Dim("Responsible:"), names.User(p.ResponsibleID))
	fmt.Fprintf(&b, "%s %s\n", Dim("Dates:      "), DateRange(p.StartDate, p.EndDate))
	fmt.Fprintf(&b, "%s %s\n", Dim("How to:     "), p.HowTo)
	fmt.Fprintf(&b, "%s %s\n", Dim("Progress:   "), RenderProgress(p.Progress, barWidth*2))
	if latest := p.LatestCheckIn(); latest != nil {
		fmt.Fprintf(&b, "%s %s %s\n", Dim("Last check-in:"), ShortDate(latest.Date), latest.Description)
	}
	b.WriteString("\n")
	b.WriteString(FormatCheckIns(p.CheckIns))
	return RenderBox("Action plan "+TruncID(p.ID), b.String())
}

func FormatCheckIns(checkIns []domain.CheckIn) string {
	if len(checkIns) == 0 {
		return Dim("No check-ins yet.") + "\n"
	}
	rows := make([][]string, 0, len(checkIns))
	for _, c := range checkIns {
		rows = append(rows, []string{ShortDate(c.Date), c.Description, RenderProgress(c.Progress, barWidth)})
	}
	return RenderTable([]string{"DATE", "CHECK-IN", "PROGRESS"}, rows)
}

// FormatTree renders the goal → objective → action plan → check-in tree.
// Progress values are printed as stored.
func FormatTree(tree *service.Tree) string {
	var items []TreeItem
	for _, g := range tree.Goals {
		items = append(items, TreeItem{Title: StyleHeader.Render(g.Goal.Description)})
		items = appendObjectives(items, g.Objectives, 1)
	}
	if len(tree.DanglingObjectives) > 0 {
		items = append(items, TreeItem{Title: StyleRed.Render(service.UnknownGoal)})
		items = appendObjectives(items, tree.DanglingObjectives, 1)
	}
	if len(tree.DanglingPlans) > 0 {
		items = append(items, TreeItem{Title: StyleRed.Render(service.UnknownObjective)})
		items = appendPlans(items, tree.DanglingPlans, 1)
	}
	if len(items) == 0 {
		return Dim("No goals yet.") + "\n"
	}
	return RenderTree(items)
}

func appendObjectives(items []TreeItem, nodes []service.ObjectiveNode, level int) []TreeItem {
	for i, on := range nodes {
		items = append(items, TreeItem{
			Title:  Bold(on.Objective.Description),
			Level:  level,
			IsLast: i == len(nodes)-1,
			Detail: RenderDualProgress(on.Objective.Progress, on.Objective.AchievedPercentage, barWidth),
		})
		items = appendPlans(items, on.ActionPlans, level+1)
	}
	return items
}

func appendPlans(items []TreeItem, nodes []service.PlanNode, level int) []TreeItem {
	for i, pn := range nodes {
		items = append(items, TreeItem{
			Title:  fmt.Sprintf("%s %s", pn.Plan.Description, Dim("("+pn.Responsible+")")),
			Level:  level,
			IsLast: i == len(nodes)-1,
			Detail: RenderProgress(pn.Plan.Progress, barWidth),
		})
		for j, c := range pn.Plan.CheckIns {
			items = append(items, TreeItem{
				Title:  Dim(ShortDate(c.Date)) + " " + c.Description,
				Level:  level + 1,
				IsLast: j == len(pn.Plan.CheckIns)-1,
				Detail: Dim(fmt.Sprintf("%d%%", c.Progress)),
			})
		}
	}
	return items
}
