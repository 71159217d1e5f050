package utils

import "strings"

// IsDigits reports whether s is non-empty and consists only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsAadhaar reports whether s is a well-formed Aadhaar number (exactly 12 digits).
func IsAadhaar(s string) bool {
	return len(s) == 12 && IsDigits(s)
}

// IsMobile reports whether s is a well-formed mobile number (exactly 10 digits).
func IsMobile(s string) bool {
	return len(s) == 10 && IsDigits(s)
}

// SplitAndTrim splits a comma-separated input into trimmed, non-empty parts.
func SplitAndTrim(s string) []string {
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Dedupe returns values with duplicates removed, preserving first-seen order.
func Dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
