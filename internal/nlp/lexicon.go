// ABOUTME: Closed-class lexicon and suffix-stripping lemmatizer for the rule-based pipeline
// ABOUTME: Irregular forms are looked up first; regular suffixes prefer candidates known to the lexicon

package nlp

import "strings"

var lexicon = buildLexicon(map[POS][]string{
	Verb: {
		"list", "ls", "enumerate", "run", "execute", "launch", "start", "search", "find",
		"locate", "grep", "look", "help", "organize", "organise", "sort", "tidy",
		"arrange", "categorize", "clean", "show", "display", "open", "view", "print",
		"read", "cat", "create", "make", "touch", "generate", "write", "add", "delete",
		"remove", "erase", "trash", "rm", "rename", "move", "mv", "relocate", "transfer",
		"copy", "summarize", "summarise", "exit", "quit", "close", "end", "use", "get",
		"give", "tell", "do", "have", "be", "want", "need", "see", "change", "explain",
		"like", "describe",
	},
	Noun: {
		"file", "script", "document", "doc", "folder", "directory", "summary", "readme",
		"repository", "repo", "program", "tool", "session", "name", "content", "template",
		"overview", "item", "line", "word", "todo", "note", "command", "option",
		"privacy", "data", "feature", "capability",
	},
	Det: {
		"a", "an", "the", "this", "that", "these", "those", "all", "every", "some",
		"any", "my", "your", "our", "their", "his", "her", "its", "each",
	},
	Pron: {"i", "you", "me", "it", "we", "they", "us", "them", "what", "who", "which"},
	Adp: {
		"in", "from", "to", "into", "for", "of", "on", "with", "about", "inside",
		"under", "as", "at", "by", "containing",
	},
	Adj: {"latest", "recent", "new", "newest", "old", "last", "most", "available"},
	Intj: {"hi", "hello", "hey", "thanks", "bye", "goodbye", "yes", "no", "ok"},
})

func buildLexicon(groups map[POS][]string) map[string]POS {
	out := make(map[string]POS)
	for pos, words := range groups {
		for _, w := range words {
			out[w] = pos
		}
	}
	return out
}

var irregular = map[string]string{
	"ran": "run", "running": "run", "found": "find", "made": "make", "shown": "show",
	"wrote": "write", "written": "write", "did": "do", "does": "do", "done": "do",
	"is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "am": "be",
	"has": "have", "had": "have", "got": "get", "gave": "give", "given": "give",
	"saw": "see", "seen": "see", "began": "begin", "ls": "ls", "rm": "rm", "mv": "mv",
	"docs": "doc", "contents": "content", "readmes": "readme",
}

// lemma reduces a case-folded word to its dictionary form.
func (p *RuleBased) lemma(w string) string {
	if l, ok := irregular[w]; ok {
		return l
	}
	if _, ok := p.lexicon[w]; ok {
		return w
	}
	cands, fallback := suffixCandidates(w)
	for _, c := range cands {
		if _, ok := p.lexicon[c]; ok {
			return c
		}
	}
	return fallback
}

// suffixCandidates lists plausible stems of w in preference order together
// with the stem to use when none of them is in the lexicon.
func suffixCandidates(w string) ([]string, string) {
	n := len(w)
	switch {
	case n > 4 && strings.HasSuffix(w, "ies"):
		stem := w[:n-3] + "y"
		return []string{stem}, stem
	case n > 4 && strings.HasSuffix(w, "ing"):
		stem := w[:n-3]
		return []string{stem + "e", undouble(stem), stem}, undouble(stem)
	case n > 3 && strings.HasSuffix(w, "ed"):
		stem := w[:n-2]
		return []string{w[:n-1], undouble(stem), stem}, undouble(stem)
	case n > 3 && strings.HasSuffix(w, "es"):
		short := w[:n-2]
		fallback := w[:n-1]
		if hasSibilantEnd(short) {
			fallback = short
		}
		return []string{w[:n-1], short}, fallback
	case n > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") &&
		!strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is"):
		return []string{w[:n-1]}, w[:n-1]
	}
	return nil, w
}

// undouble drops one letter of a doubled final consonant ("runn" -> "run").
func undouble(s string) string {
	n := len(s)
	if n < 3 || s[n-1] != s[n-2] {
		return s
	}
	switch s[n-1] {
	case 'l', 's', 'z', 'e', 'o', 'a', 'i', 'u':
		return s
	}
	return s[:n-1]
}

func hasSibilantEnd(s string) bool {
	for _, suf := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
