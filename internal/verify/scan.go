package verify

import "strings"

// MissingSubstring returns the first pattern not contained in content, or ""
// when all are present. Matching is case-insensitive.
func MissingSubstring(content string, patterns []string) string {
	lower := strings.ToLower(content)
	for _, p := range patterns {
		if !strings.Contains(lower, strings.ToLower(p)) {
			return p
		}
	}
	return ""
}

// ContainsAny reports whether content contains at least one pattern,
// case-insensitively.
func ContainsAny(content string, patterns []string) bool {
	lower := strings.ToLower(content)
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
