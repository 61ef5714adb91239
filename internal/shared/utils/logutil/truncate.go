package logutil

import "unicode/utf8"

// Excerpt shortens free text (titles, comment bodies) for log lines. It cuts on
// rune boundaries and appends "..." when anything was dropped.
func Excerpt(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
