package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/strata/internal/domain"
)

const dateLayout = "2006-01-02"

// resolveID matches input against items by exact id, then by unique id prefix.
func resolveID[T domain.Entity](kind, input string, items []T) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, it := range items {
		if it.EntityID() == input {
			return input, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.EntityID(), input) {
			matches = append(matches, it.EntityID())
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// parseDate parses a YYYY-MM-DD flag value. Empty input yields the zero time
// so the service reports the field as missing.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: use YYYY-MM-DD", flag, value)
	}
	return d, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
