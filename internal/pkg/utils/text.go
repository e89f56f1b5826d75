package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether substr occurs in s under Unicode case folding.
// A blank substr matches everything.
func ContainsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}
	// cases.Caser is stateful, so each call gets its own.
	return strings.Contains(cases.Fold().String(s), cases.Fold().String(substr))
}

// ContainsFoldAny reports whether substr occurs in any of the fields.
func ContainsFoldAny(substr string, fields ...string) bool {
	if strings.TrimSpace(substr) == "" {
		return true
	}
	for _, field := range fields {
		if ContainsFold(field, substr) {
			return true
		}
	}
	return false
}
