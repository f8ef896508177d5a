package utils

import (
	"strings"
)

// IncludesAny reports whether haystack contains any of the needles,
// ignoring case. Empty needles never match.
func IncludesAny(haystack string, needles []string) bool {
	return CountMatches(haystack, needles) > 0
}

// CountMatches returns how many needles occur in haystack, ignoring case.
func CountMatches(haystack string, needles []string) int {
	h := strings.ToLower(haystack)
	n := 0
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(h, strings.ToLower(needle)) {
			n++
		}
	}
	return n
}

// Clamp limits n to the closed range [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Truncate returns a truncated string with "..." if it exceeds maxLen.
// This function is Unicode-safe, counting runes instead of bytes.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// NonEmpty trims every entry and drops the blank ones.
func NonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
