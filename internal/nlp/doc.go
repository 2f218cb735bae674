// ABOUTME: Token, span and document types produced by a linguistic pipeline
// ABOUTME: Doc helpers expose entity spans and simple next-token adjacency

package nlp

// POS is a coarse part-of-speech tag.
type POS string

// Part-of-speech tags emitted by the rule-based pipeline.
const (
	Verb  POS = "VERB"
	Noun  POS = "NOUN"
	Pron  POS = "PRON"
	Det   POS = "DET"
	Adp   POS = "ADP"
	Adj   POS = "ADJ"
	Intj  POS = "INTJ"
	Num   POS = "NUM"
	Punct POS = "PUNCT"
	Other POS = "X"
)

// Entity labels.
const (
	EntFile     = "FILE"
	EntPath     = "PATH"
	EntCategory = "CATEGORY"
)

// Token is one analyzed word of the input.
type Token struct {
	Text  string // surface form
	Lower string // case-folded form
	Lemma string
	POS   POS
	Ent   string // entity label, empty when the token is not part of an entity
	Index int
}

// IsEntity reports whether the token carries an entity label.
func (t Token) IsEntity() bool { return t.Ent != "" }

// Span is a labeled entity range over token indexes [Start, End).
type Span struct {
	Label string
	Start int
	End   int
	Text  string
}

// Doc is the analysis of one input line.
type Doc struct {
	Text   string
	Tokens []Token
}

// Entities returns the entity spans in token order.
// Adjacent tokens never merge; every entity is a single token.
func (d *Doc) Entities() []Span {
	var spans []Span
	for _, t := range d.Tokens {
		if t.Ent == "" {
			continue
		}
		spans = append(spans, Span{Label: t.Ent, Start: t.Index, End: t.Index + 1, Text: t.Text})
	}
	return spans
}

// Next returns the first non-punctuation token after index i.
func (d *Doc) Next(i int) (Token, bool) {
	for j := i + 1; j < len(d.Tokens); j++ {
		if d.Tokens[j].POS != Punct {
			return d.Tokens[j], true
		}
	}
	return Token{}, false
}

// Head returns the index of the first content token, skipping politeness
// markers and request framings such as "please", "can you" or "i want to".
// Returns -1 when the doc has no content token.
func (d *Doc) Head() int {
	i := 0
	n := len(d.Tokens)
	for i < n {
		t := d.Tokens[i]
		switch {
		case t.POS == Punct || politeness[t.Lower]:
			i++
			continue
		case modals[t.Lower] && i+1 < n && d.Tokens[i+1].Lower == "you":
			i += 2
			continue
		case t.Lower == "i" || t.Lower == "i'd":
			if j, ok := d.skipWish(i + 1); ok {
				i = j
				continue
			}
		}
		return i
	}
	return -1
}

// skipWish consumes "want to", "need to", "would like to" and "like to"
// starting at i and returns the index after "to".
func (d *Doc) skipWish(i int) (int, bool) {
	n := len(d.Tokens)
	for i < n && (d.Tokens[i].Lower == "want" || d.Tokens[i].Lower == "need" ||
		d.Tokens[i].Lower == "would" || d.Tokens[i].Lower == "like") {
		i++
	}
	if i < n && d.Tokens[i].Lower == "to" {
		return i + 1, true
	}
	return 0, false
}

var politeness = map[string]bool{"please": true, "pls": true, "kindly": true, "just": true}

var modals = map[string]bool{"can": true, "could": true, "would": true, "will": true}
