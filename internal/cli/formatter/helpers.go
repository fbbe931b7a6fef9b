package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// ShortDate formats a calendar date; the zero time renders as "--".
func ShortDate(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.Format("2006-01-02")
}

// DateRange renders "start → end".
func DateRange(start, end time.Time) string {
	return ShortDate(start) + " → " + ShortDate(end)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// RoleBadge colors a role name.
func RoleBadge(role string) string {
	switch role {
	case "ADMIN":
		return StyleRed.Render(role)
	case "MASTER":
		return StylePurple.Render(role)
	default:
		return StyleBlue.Render(role)
	}
}
