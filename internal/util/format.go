// Package util provides formatting helpers for the CLI.
package util

import (
	"fmt"
	"math"
	"strings"
)

// FormatDuration converts a duration in seconds to a compact human form:
// "42s", "3m 35s", "1h 12m".
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(math.Round(seconds))

	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	default:
		return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
	}
}

// TitleCase converts a SCREAMING_SNAKE_CASE or upper-case token like
// "CRITICAL" to "Critical".
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(s), "_")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
