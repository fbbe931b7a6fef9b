package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a whole-number percentage as [████░░░░]  45%.
func RenderProgress(pct, width int) string {
	pct = max(0, min(100, pct))
	width = max(2, width)

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3d%%", PercentStyle(pct).Render(bar), pct)
}

// RenderDualProgress shows an objective's manual and achieved figures side
// by side.
func RenderDualProgress(manual, achieved, width int) string {
	return fmt.Sprintf("manual %s  achieved %s", RenderProgress(manual, width), RenderProgress(achieved, width))
}
