// ABOUTME: Enhanced scorer: matches catalog rules against lemmas, POS tags and entity spans.
// ABOUTME: Adds head-verb and adjacency bonuses, capped at EnhancedCap; degrades to heuristics on error.

package intent

import (
	"strings"

	"github.com/mauromedda/scriptterm/internal/log"
	"github.com/mauromedda/scriptterm/internal/nlp"
)

// EnhancedCap bounds enhanced scores below the heuristic maximum.
const EnhancedCap = 0.9

const (
	headVerbBonus  = 0.15
	adjacencyBonus = 0.1
)

type enhancedScorer struct {
	catalog  *Catalog
	pipeline nlp.Pipeline
	fallback heuristicScorer
	keywords map[Type]map[string]bool
}

func newEnhancedScorer(c *Catalog, p nlp.Pipeline) *enhancedScorer {
	s := &enhancedScorer{
		catalog:  c,
		pipeline: p,
		fallback: heuristicScorer{catalog: c},
		keywords: make(map[Type]map[string]bool),
	}
	for _, e := range c.entries {
		kws := make(map[string]bool)
		for _, k := range c.Keywords(e.Type) {
			kws[strings.ToLower(k)] = true
		}
		s.keywords[e.Type] = kws
	}
	return s
}

func (s *enhancedScorer) score(text string) []Score {
	doc, err := s.pipeline.Analyze(text)
	if err != nil {
		log.Debug("enhanced analysis failed, using heuristics: %v", err)
		return s.fallback.score(text)
	}

	head := doc.Head()
	out := make([]Score, 0, len(s.catalog.entries))
	for _, e := range s.catalog.entries {
		sc := Score{Type: e.Type}
		for _, r := range e.Rules {
			detail, ok := r.matchDoc(doc, text)
			if !ok {
				continue
			}
			sc.Value += r.Weight
			sc.Signals = append(sc.Signals, Signal{Kind: r.Kind, Weight: r.Weight, Detail: detail})
		}
		if sc.Value > 0 && head >= 0 {
			s.applyBonuses(&sc, doc, head)
		}
		sc.Value = min(clamp(sc.Value), EnhancedCap)
		out = append(out, sc)
	}
	return out
}

// applyBonuses rewards an imperative head verb that is one of the type's
// keywords, and again when that verb is directly followed by an entity.
func (s *enhancedScorer) applyBonuses(sc *Score, doc *nlp.Doc, head int) {
	tok := doc.Tokens[head]
	if tok.POS != nlp.Verb || !(s.keywords[sc.Type][tok.Lemma] || s.keywords[sc.Type][tok.Lower]) {
		return
	}
	sc.Value += headVerbBonus
	sc.Signals = append(sc.Signals, Signal{Kind: KeywordRule, Weight: headVerbBonus, Detail: "head:" + tok.Lemma})

	next, ok := doc.Next(head)
	if !ok || !next.IsEntity() {
		return
	}
	sc.Value += adjacencyBonus
	sc.Signals = append(sc.Signals, Signal{Kind: KeywordRule, Weight: adjacencyBonus, Detail: "adjacent:" + next.Ent})
}

// matchDoc evaluates the rule against an analyzed document. Keywords and
// context words compare against lemmas of non-entity tokens, so a file
// called organize_ai_scripts.py never triggers organize.
func (r PatternRule) matchDoc(doc *nlp.Doc, text string) (string, bool) {
	switch r.Kind {
	case KeywordRule:
		for i, k := range r.Words {
			if strings.Contains(k, " ") {
				if r.matchers[i].MatchString(text) {
					return k, true
				}
				continue
			}
			if tokenMatches(doc, k) {
				return k, true
			}
		}
	case RegexRule:
		if r.regex.MatchString(text) {
			return r.Pattern, true
		}
	case ContextRule:
		for _, w := range r.Words {
			if tokenMatches(doc, w) || tokenMatches(doc, strings.TrimSuffix(w, "s")) {
				return w, true
			}
		}
	}
	return "", false
}

func tokenMatches(doc *nlp.Doc, w string) bool {
	for _, t := range doc.Tokens {
		if t.IsEntity() && t.Ent != nlp.EntCategory {
			continue
		}
		if t.Lower == w || t.Lemma == w {
			return true
		}
	}
	return false
}
