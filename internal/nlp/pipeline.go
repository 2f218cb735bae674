// ABOUTME: Rule-based linguistic pipeline: segmentation, case folding, lemmas, POS, entities
// ABOUTME: Uses uniseg word boundaries and x/text case folding; no models, no network

package nlp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Pipeline analyzes one line of text into tokens.
type Pipeline interface {
	Analyze(text string) (*Doc, error)
}

// Options configures the rule-based pipeline.
type Options struct {
	// Categories are words tagged as CATEGORY entities (e.g. "python", "shell").
	Categories []string
}

// RuleBased is a deterministic Pipeline built from a small lexicon.
// It holds no mutable state after construction.
type RuleBased struct {
	lexicon    map[string]POS
	categories map[string]bool
}

// NewRuleBased creates a rule-based pipeline.
func NewRuleBased(opts Options) *RuleBased {
	cats := make(map[string]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		cats[fold(c)] = true
	}
	return &RuleBased{lexicon: lexicon, categories: cats}
}

// ErrEmptyInput is returned by Analyze for blank text.
var ErrEmptyInput = errors.New("empty input")

// Analyze segments text into tokens and tags each one.
func (p *RuleBased) Analyze(text string) (*Doc, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	doc := &Doc{Text: text}
	for _, field := range strings.Fields(text) {
		for _, surface := range p.segment(field) {
			tok := p.tag(surface)
			tok.Index = len(doc.Tokens)
			doc.Tokens = append(doc.Tokens, tok)
		}
	}
	return doc, nil
}

// segment splits one whitespace-delimited field. File names and paths stay
// whole; everything else is split on Unicode word boundaries.
func (p *RuleBased) segment(field string) []string {
	core := trimOuterPunct(field)
	if core != "" && (IsFileName(core) || isPath(core)) {
		return []string{core}
	}

	var out []string
	state := -1
	rest := field
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) == "" {
			continue
		}
		out = append(out, word)
	}
	return out
}

func (p *RuleBased) tag(surface string) Token {
	lower := fold(surface)
	tok := Token{Text: surface, Lower: lower, Lemma: lower}

	switch {
	case isPunct(surface):
		tok.POS = Punct
		return tok
	case IsFileName(surface):
		tok.POS, tok.Ent = Noun, EntFile
		return tok
	case isPath(surface):
		tok.POS, tok.Ent = Noun, EntPath
		return tok
	case isNumber(surface):
		tok.POS = Num
		return tok
	}

	tok.Lemma = p.lemma(lower)
	if p.categories[lower] {
		tok.POS, tok.Ent = Noun, EntCategory
		return tok
	}
	if pos, ok := p.lexicon[lower]; ok {
		tok.POS = pos
	} else if pos, ok := p.lexicon[tok.Lemma]; ok {
		tok.POS = pos
	} else {
		tok.POS = guessPOS(lower)
	}
	return tok
}

// Probe checks that the pipeline produces usable analyses.
func Probe(p Pipeline) error {
	if p == nil {
		return errors.New("no pipeline")
	}
	doc, err := p.Analyze("please run the scripts")
	if err != nil {
		return fmt.Errorf("probe analysis: %w", err)
	}
	if len(doc.Tokens) != 4 {
		return fmt.Errorf("probe: got %d tokens, want 4", len(doc.Tokens))
	}
	head := doc.Head()
	if head != 1 || doc.Tokens[head].POS != Verb || doc.Tokens[head].Lemma != "run" {
		return fmt.Errorf("probe: unexpected head token %+v", doc.Tokens[max(head, 0)])
	}
	if doc.Tokens[3].Lemma != "script" {
		return fmt.Errorf("probe: lemma %q, want %q", doc.Tokens[3].Lemma, "script")
	}
	return nil
}

// IsFileName reports whether s ends in a dot followed by 1-4 alphanumeric
// characters with at least one letter, preceded by a non-empty base name.
func IsFileName(s string) bool {
	ext := filepath.Ext(s)
	if len(ext) < 2 || len(ext) > 5 {
		return false
	}
	base := strings.TrimSuffix(filepath.Base(s), ext)
	if base == "" || strings.Trim(base, ".") == "" {
		return false
	}
	hasLetter := false
	for _, r := range ext[1:] {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
		default:
			return false
		}
	}
	return hasLetter
}

func isPath(s string) bool {
	if !strings.Contains(s, "/") || strings.Contains(s, "://") {
		return false
	}
	return strings.Trim(s, "/") != ""
}

func isPunct(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// trimOuterPunct strips quotes, brackets and sentence punctuation around a
// field, including a trailing full stop.
func trimOuterPunct(s string) string {
	s = strings.Trim(s, "\"'`“”‘’()[]{}<>,;:!?")
	if strings.Trim(s, ".") != "" {
		s = strings.TrimRight(s, ".")
	}
	return s
}

// TrimToken exposes the field cleanup used for file-name detection.
func TrimToken(s string) string { return trimOuterPunct(s) }

func fold(s string) string {
	return cases.Fold().String(s)
}

func guessPOS(w string) POS {
	switch {
	case strings.HasSuffix(w, "ly"):
		return Adj
	case len(w) > 4 && (strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "ize") || strings.HasSuffix(w, "ise")):
		return Verb
	default:
		return Noun
	}
}
