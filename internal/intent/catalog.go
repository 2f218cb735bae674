// ABOUTME: Static pattern catalog: weighted keyword, regex and context rules per intent type.
// ABOUTME: Rules compile once; Validate guarantees every recognizable type has an entry.

package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind selects how a PatternRule is evaluated.
type RuleKind int

const (
	// KeywordRule contributes when any word matches as a whole word.
	KeywordRule RuleKind = iota
	// RegexRule contributes when the pattern matches anywhere in the input.
	RegexRule
	// ContextRule contributes a small bonus when any word appears anywhere.
	ContextRule
)

// PatternRule is one weighted contribution to an intent's score.
type PatternRule struct {
	Kind    RuleKind
	Weight  float64
	Words   []string // keyword and context rules
	Pattern string   // regex rules; compiled case-insensitively

	matchers []*regexp.Regexp
	regex    *regexp.Regexp
}

// Entry groups the rules of one intent type.
type Entry struct {
	Type  Type
	Rules []PatternRule
}

// Catalog is an ordered list of entries. Order matches the Type enum so that
// ties resolve the same way on every run.
type Catalog struct {
	entries []Entry
}

// NewCatalog compiles and validates entries.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		rules := make([]PatternRule, len(e.Rules))
		for j, r := range e.Rules {
			if err := r.compile(); err != nil {
				return nil, fmt.Errorf("catalog %s rule %d: %w", e.Type, j, err)
			}
			rules[j] = r
		}
		c.entries[i] = Entry{Type: e.Type, Rules: rules}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every type except Unknown has exactly one entry.
func (c *Catalog) Validate() error {
	seen := make(map[Type]bool, len(c.entries))
	for _, e := range c.entries {
		if e.Type == Unknown {
			return fmt.Errorf("catalog: unknown has no patterns")
		}
		if seen[e.Type] {
			return fmt.Errorf("catalog: duplicate entry for %s", e.Type)
		}
		seen[e.Type] = true
	}
	for _, t := range Types() {
		if t != Unknown && !seen[t] {
			return fmt.Errorf("catalog: no entry for %s", t)
		}
	}
	return nil
}

// Entries returns the compiled entries in order.
func (c *Catalog) Entries() []Entry { return c.entries }

// Keywords returns the keyword-rule words of t.
func (c *Catalog) Keywords(t Type) []string {
	var out []string
	for _, e := range c.entries {
		if e.Type != t {
			continue
		}
		for _, r := range e.Rules {
			if r.Kind == KeywordRule {
				out = append(out, r.Words...)
			}
		}
	}
	return out
}

func (r *PatternRule) compile() error {
	if r.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %v", r.Weight)
	}
	switch r.Kind {
	case KeywordRule:
		if len(r.Words) == 0 {
			return fmt.Errorf("keyword rule without words")
		}
		r.matchers = compileKeywords(r.Words)
	case RegexRule:
		re, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return fmt.Errorf("compile %q: %w", r.Pattern, err)
		}
		r.regex = re
	case ContextRule:
		if len(r.Words) == 0 {
			return fmt.Errorf("context rule without words")
		}
	default:
		return fmt.Errorf("unknown rule kind %d", r.Kind)
	}
	return nil
}

// compileKeywords turns keywords into whole-word patterns. Phrases and short
// words match exactly; longer single words also accept common suffixes
// (e.g. search -> searches, searching).
func compileKeywords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		pattern := `(?i)\b` + regexp.QuoteMeta(w) + `\b`
		if !strings.Contains(w, " ") && len(w) >= 4 {
			pattern = `(?i)\b` + regexp.QuoteMeta(w) + `(?:es|s|ed|d|ing)?\b`
		}
		out[i] = regexp.MustCompile(pattern)
	}
	return out
}

func kw(weight float64, words ...string) PatternRule {
	return PatternRule{Kind: KeywordRule, Weight: weight, Words: words}
}

func re(weight float64, pattern string) PatternRule {
	return PatternRule{Kind: RegexRule, Weight: weight, Pattern: pattern}
}

func ctx(weight float64, words ...string) PatternRule {
	return PatternRule{Kind: ContextRule, Weight: weight, Words: words}
}

// DefaultEntries returns the built-in pattern table.
func DefaultEntries() []Entry {
	const verbs = `(list|run|search|find|show|create|delete|remove|rename|move|summari[sz]e|organi[sz]e)`
	return []Entry{
		{List, []PatternRule{
			kw(0.6, "list", "ls", "enumerate"),
			re(0.7, `^\s*(show|display|get)\s+(me\s+)?((all|the|my)\s+)*(\w+\s+)?(files|scripts|docs|documents)\b`),
			re(0.5, `\bwhat\s+(files|scripts|docs|documents)\b`),
			ctx(0.1, "files", "scripts", "available", "directory", "folder"),
		}},
		{Run, []PatternRule{
			kw(0.6, "run", "execute", "launch"),
			re(0.3, `^\s*(run|execute|launch|start)\s+\S+\.(py|sh|bash)\b`),
			ctx(0.1, "script", "program", "tool"),
		}},
		{Search, []PatternRule{
			kw(0.6, "search", "find", "locate", "grep"),
			re(0.6, `\blook(ing)?\s+for\b`),
			re(0.2, `\b(containing|contains|mentioning)\b`),
			ctx(0.1, "occurrence", "mention", "matches", "text", "term"),
		}},
		{Help, []PatternRule{
			kw(0.6, "help", "manual", "usage", "guide", "instructions"),
			re(0.3, `^\s*help\s+\w+\s*$`),
			re(0.8, `\bhow\s+(do|can)\s+i\s+`+verbs+`\b`),
			re(0.4, `\bwhat\s+commands\b`),
			ctx(0.1, "commands", "options"),
		}},
		{Organize, []PatternRule{
			kw(0.6, "organize", "organise", "tidy", "categorize", "arrange"),
			re(0.5, `\bclean\s+up\b`),
			re(0.4, `^\s*sort\b`),
			ctx(0.1, "repository", "repo", "folders", "mess"),
		}},
		{Show, []PatternRule{
			kw(0.5, "show", "display", "cat", "open", "view", "print"),
			re(0.3, `\b(show|display|cat|open|view|print|read)\s+(me\s+)?(the\s+)?\S+\.\w{1,4}\b`),
			re(0.4, `\bcontents?\s+of\b`),
			ctx(0.1, "content", "file"),
		}},
		{Create, []PatternRule{
			kw(0.6, "create", "make", "touch", "generate"),
			re(0.2, `\b(create|make)\s+(a\s+)?(new\s+)?(python|shell|bash|markdown|text)\b`),
			ctx(0.1, "new", "template", "called", "named"),
		}},
		{Delete, []PatternRule{
			kw(0.6, "delete", "remove", "rm", "erase", "trash"),
			re(0.6, `\bget\s+rid\s+of\b`),
			ctx(0.1, "permanently"),
		}},
		{Rename, []PatternRule{
			kw(0.7, "rename"),
			re(0.6, `\bchange\s+(the\s+)?name\b`),
			ctx(0.1, "name", "called"),
		}},
		{Move, []PatternRule{
			kw(0.6, "move", "mv", "relocate", "transfer"),
			re(0.3, `\b(move|mv)\s+\S+\s+(to|into)\s+\S+`),
			ctx(0.1, "folder", "directory", "into"),
		}},
		{Summarize, []PatternRule{
			kw(0.7, "summarize", "summarise", "summary", "tldr"),
			re(0.3, `\bgive\s+me\s+an?\s+(summary|overview)\b`),
			re(0.5, `\bwhat\s+does\s+\S+\.\w{1,4}\s+do\b`),
			ctx(0.1, "latest", "recent", "document", "readme"),
		}},
		{AIChat, []PatternRule{
			kw(0.4, "hi", "hello", "hey", "thanks", "thank"),
			re(0.2, `\?\s*$`),
			re(0.1, `^\s*(what|who|why|how|when|where|is|are|can|do|does)\b`),
			ctx(0.1, "you", "your", "privacy", "private"),
		}},
		{Exit, []PatternRule{
			kw(0.6, "exit", "quit", "bye", "goodbye"),
			re(0.4, `^\s*(exit|quit|bye|goodbye|close)\s*[.!]*\s*$`),
			re(0.6, `\bend\s+(the\s+)?session\b`),
		}},
	}
}

// DefaultCatalog returns the compiled built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return c
}
