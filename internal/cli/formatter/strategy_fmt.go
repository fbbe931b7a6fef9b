package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/strata/internal/domain"
)

func FormatValueList(values []domain.Value) string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{TruncID(v.ID), v.Description, v.Meaning})
	}
	return RenderTable([]string{"ID", "VALUE", "MEANING"}, rows)
}

// FormatOverview renders vision, mission and values as one boxed report.
func FormatOverview(ov *domain.Overview) string {
	var b strings.Builder
	b.WriteString(Header("Vision") + "\n")
	b.WriteString(statementText(ov.Vision) + "\n\n")
	b.WriteString(Header("Mission") + "\n")
	b.WriteString(statementText(ov.Mission) + "\n\n")
	b.WriteString(Header("Values") + "\n")
	if len(ov.Values) == 0 {
		b.WriteString(Dim("No values defined."))
	}
	for i, v := range ov.Values {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s", StylePurple.Render("◆"), Bold(v.Description))
		if v.Meaning != "" {
			fmt.Fprintf(&b, "\n  %s", Dim(v.Meaning))
		}
	}
	return RenderBox("Strategic overview", b.String())
}

func statementText(s *domain.Statement) string {
	if s == nil {
		return Dim("Not defined yet.")
	}
	return s.Description
}

func FormatUserList(users []domain.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{TruncID(u.ID), u.Name, u.Email, RoleBadge(string(u.Role))})
	}
	return RenderTable([]string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
}
