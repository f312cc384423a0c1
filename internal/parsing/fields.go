// Package parsing derives structured candidate fields from plain resume text.
// Everything here is a pure function of the text: pattern matching and line
// heuristics, no I/O and no errors. "Not detected" is an empty string.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// emailPattern matches a standard local@domain.tld address.
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// phonePattern matches an optional leading + followed by at least ten
	// digits interspersed with spaces or hyphens. Intentionally permissive:
	// long numeric sequences can false-positive, which is a documented
	// limitation of the heuristic rather than a bug.
	phonePattern = regexp.MustCompile(`\+?\d[\d\-\s]{8,}\d`)
)

// ExtractEmail returns the first email-shaped substring in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName scans text line by line and returns the first line that looks
// like a human name: non-blank, no "@" (contact info), at most five tokens,
// and entirely alphabetic once spaces are stripped. Returns "" when no line
// qualifies. This is a line-shape heuristic, not named-entity recognition.
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		if len(strings.Fields(line)) > 5 {
			continue
		}
		if isAlphabetic(strings.ReplaceAll(line, " ", "")) {
			return line
		}
	}
	return ""
}

// isAlphabetic reports whether s is non-empty and contains only letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// SplitCommaSeparated splits a comma-separated list into trimmed, non-empty
// entries. An empty or whitespace-only input yields an empty slice.
func SplitCommaSeparated(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
