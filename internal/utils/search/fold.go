// Package search implements the accent and case insensitive matching used by list filters.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes s for comparison: accents are stripped and case is folded,
// so "Maíz" and "MAIZ" fold to the same key.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	// Casers are stateful, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// Contains reports whether needle occurs in any of the haystacks after folding.
// An empty needle matches everything.
func Contains(needle string, haystacks ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(Fold(h), n) {
			return true
		}
	}
	return false
}
