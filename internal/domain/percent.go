package domain

// ClampPercent bounds pct to the closed range [0, 100].
func ClampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
