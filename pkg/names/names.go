// Package names normalizes location display names into the canonical form
// used by rating lookups.
package names

import "strings"

// Canonical resolves the name to navigate with for a location row. A
// backend-provided canonical name wins. Otherwise a
// "<Building> - Room <Number>" display name collapses to
// "<Building> <Number>"; a bare "A - B" form is collapsed only when the
// result still carries a digit, since building-only names must pass
// through untouched.
func Canonical(display, canonical string) string {
	if canonical != "" {
		return canonical
	}
	if display == "" {
		return ""
	}
	if strings.Contains(display, " - Room ") {
		return strings.Replace(display, " - Room ", " ", 1)
	}
	if collapsed := strings.Replace(display, " - ", " ", 1); collapsed != display && hasDigit(collapsed) {
		return collapsed
	}
	return display
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
