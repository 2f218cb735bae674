// ABOUTME: Display width of terminal strings with grapheme-aware segmentation
// ABOUTME: Pads and truncates styled text to a column count for aligned listings

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies. ANSI escape
// sequences are zero width; wide runes and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// isPlainASCII reports whether s holds only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func graphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// PadRight appends spaces until s is n columns wide. Wider strings are
// returned unchanged.
func PadRight(s string, n int) string {
	if w := VisibleWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// Truncate cuts plain text to at most n columns, ending in an ellipsis when
// anything was removed.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if VisibleWidth(s) <= n {
		return s
	}
	var b strings.Builder
	col := 0
	state := -1
	rest := StripANSI(s)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := graphemeWidth(cluster)
		if col+cw > n-1 {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	b.WriteRune('…')
	return b.String()
}
