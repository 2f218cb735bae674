// ABOUTME: Name normalization for file lookup: Unicode spaces, NFC/NFD forms, curly quotes
// ABOUTME: Typed names rarely match on-disk bytes exactly, so lookups try each variant

package tools

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces replaces non-ASCII space characters with U+0020.
func NormalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if isUnicodeSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func isUnicodeSpace(r rune) bool {
	switch {
	case r == '\u00A0', r == '\u202F', r == '\u205F', r == '\u3000':
		return true
	case r >= '\u2000' && r <= '\u200A':
		return true
	}
	return false
}

// nameVariants returns the distinct spellings of name worth trying on disk,
// direct form first.
func nameVariants(name string) []string {
	straight := strings.NewReplacer("\u2019", "'", "\u2018", "'").Replace(name)
	candidates := []string{
		name,
		NormalizeSpaces(name),
		norm.NFC.String(name),
		norm.NFD.String(name),
		straight,
		norm.NFD.String(straight),
	}
	out := candidates[:0]
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
