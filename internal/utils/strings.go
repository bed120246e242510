package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey returns the case-folded form of key for case-insensitive maps.
// A Caser holds state, so one is created per call instead of being shared.
func FoldKey(key string) string {
	return cases.Fold().String(key)
}

// SplitList splits a ';'-separated string into trimmed, non-empty parts.
func SplitList(value string) []string {
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
