package system

import (
	"regexp"
	"strings"
)

// kvLookup finds the first line of the form "<key> : value" or
// "<key> = value" (key match case-insensitive, leading whitespace
// allowed) and returns the value with surrounding whitespace trimmed.
// Absent key yields "".
func kvLookup(key string, lines []string) string {
	re := regexp.MustCompile(`(?i)^\s*` + regexp.QuoteMeta(key) + `\s*[:=]\s*`)
	for _, line := range lines {
		if loc := re.FindStringIndex(line); loc != nil {
			return strings.TrimSpace(line[loc[1]:])
		}
	}
	return ""
}

// countMatching returns how many lines contain the given substring.
func countMatching(sub string, lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.Contains(line, sub) {
			n++
		}
	}
	return n
}

// firstMatching returns the first line containing the given substring.
func firstMatching(sub string, lines []string) (string, bool) {
	for _, line := range lines {
		if strings.Contains(line, sub) {
			return line, true
		}
	}
	return "", false
}
