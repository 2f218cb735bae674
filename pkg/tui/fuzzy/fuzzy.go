// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking candidate names against a typed pattern
// ABOUTME: Used for "did you mean" suggestions when a file cannot be resolved

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is one ranked candidate.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find ranks items against pattern, best first. An empty pattern matches nothing.
func Find(pattern string, items []string) []Match {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Top returns up to n distinct candidate strings for pattern, best first.
// Matching ignores case.
func Top(pattern string, items []string, n int) []string {
	lowered := make([]string, len(items))
	for i, it := range items {
		lowered[i] = strings.ToLower(it)
	}
	var out []string
	seen := make(map[string]bool)
	for _, m := range Find(strings.ToLower(pattern), lowered) {
		s := items[m.Index]
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out
}
