package util

import (
	"math"
	"strings"
)

// NoDataPlaceholder replaces any list element a template expects but the
// evaluation context never provided.
const NoDataPlaceholder = "sin datos adicionales"

// Truncate cuts a string to at most max runes, appending an ellipsis when
// something was dropped.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

// FirstOr returns the first element of a list, or the fallback when the list
// is empty or the first element is blank.
func FirstOr(list []string, fallback string) string {
	if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
		return fallback
	}
	return list[0]
}

// JoinOr joins a list with a separator, or returns the fallback for an empty
// list.
func JoinOr(list []string, separator string, fallback string) string {
	cleaned := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return strings.Join(cleaned, separator)
}

// PercentIncrease computes the whole-percent increase from baseline to
// newValue. A non-positive baseline yields 0 so callers can skip the
// comparison instead of dividing by zero.
func PercentIncrease(newValue float64, baseline float64) int {
	if baseline <= 0 {
		return 0
	}
	return int(math.Round((newValue - baseline) / baseline * 100))
}
