// ABOUTME: Heuristic scorer: sums weighted keyword, regex and context rule matches per intent.
// ABOUTME: Always available; the enhanced scorer falls back to it when analysis fails.

package intent

import "strings"

// Signal records one rule that contributed to a score.
type Signal struct {
	Kind   RuleKind
	Weight float64
	Detail string // matched keyword or pattern
}

// Score is the clamped total of one intent type.
type Score struct {
	Type    Type
	Value   float64
	Signals []Signal
}

// scorer computes a score for every catalog entry, in catalog order.
type scorer interface {
	score(text string) []Score
}

type heuristicScorer struct {
	catalog *Catalog
}

func (h heuristicScorer) score(text string) []Score {
	lower := strings.ToLower(text)
	out := make([]Score, 0, len(h.catalog.entries))
	for _, e := range h.catalog.entries {
		s := Score{Type: e.Type}
		for _, r := range e.Rules {
			detail, ok := r.matchText(text, lower)
			if !ok {
				continue
			}
			s.Value += r.Weight
			s.Signals = append(s.Signals, Signal{Kind: r.Kind, Weight: r.Weight, Detail: detail})
		}
		s.Value = clamp(s.Value)
		out = append(out, s)
	}
	return out
}

// matchText evaluates the rule against raw text and its lowercase form.
func (r PatternRule) matchText(text, lower string) (string, bool) {
	switch r.Kind {
	case KeywordRule:
		for i, m := range r.matchers {
			if m.MatchString(text) {
				return r.Words[i], true
			}
		}
	case RegexRule:
		if r.regex.MatchString(text) {
			return r.Pattern, true
		}
	case ContextRule:
		for _, w := range r.Words {
			if strings.Contains(lower, w) {
				return w, true
			}
		}
	}
	return "", false
}

// best returns the highest score; earlier entries win ties.
func best(scores []Score) Score {
	top := Score{Type: Unknown}
	found := false
	for _, s := range scores {
		if !found || s.Value > top.Value {
			top = s
			found = true
		}
	}
	return top
}
