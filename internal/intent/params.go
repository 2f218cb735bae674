// ABOUTME: Parameter extraction: target, file_type, scope, directory and per-intent extras.
// ABOUTME: Runs after intent selection because the trigger word depends on the winning type.

package intent

import (
	"regexp"
	"strings"

	"github.com/mauromedda/scriptterm/internal/nlp"
)

// DefaultFileTypes maps category vocabulary to canonical file types.
var DefaultFileTypes = map[string]string{
	"python": "python", "py": "python", "python3": "python",
	"shell": "shell", "bash": "shell", "sh": "shell", "zsh": "shell",
	"markdown": "markdown", "md": "markdown", "docs": "markdown",
	"documents": "markdown", "documentation": "markdown",
	"text": "text", "txt": "text",
}

var suffixTypes = map[string]string{
	".py": "python", ".sh": "shell", ".bash": "shell",
	".md": "markdown", ".markdown": "markdown", ".txt": "text",
}

var stopwords = set(
	"a", "an", "the", "my", "your", "our", "their", "its", "this", "that", "these",
	"those", "me", "us", "some", "any", "all", "every", "latest", "recent", "newest",
	"most", "please", "for", "of", "about", "called", "named", "with", "is", "are",
	"what", "which", "new",
)

var genericNouns = set(
	"file", "files", "script", "scripts", "document", "documents", "doc", "docs",
	"program", "programs", "template",
)

var directoryPreps = set("in", "from", "to", "into", "inside", "under")

var scopeWords = map[string]string{
	"latest": "latest", "newest": "latest", "recent": "recent", "all": "all",
}

var topicAliases = map[string]Type{
	"ls": List, "execute": Run, "find": Search, "grep": Search, "organise": Organize,
	"cat": Show, "view": Show, "make": Create, "remove": Delete, "rm": Delete,
	"mv": Move, "summarise": Summarize, "summary": Summarize, "chat": AIChat, "quit": Exit,
}

var quoted = regexp.MustCompile(`["'“‘]([^"'”’]+)["'”’]`)

type word struct {
	raw   string
	clean string
	lower string
}

type extractor struct {
	fileTypes map[string]string
	keywords  map[Type][]string
}

func newExtractor(c *Catalog, fileTypes map[string]string) *extractor {
	if fileTypes == nil {
		fileTypes = DefaultFileTypes
	}
	x := &extractor{fileTypes: fileTypes, keywords: make(map[Type][]string)}
	for _, e := range c.entries {
		for _, k := range c.Keywords(e.Type) {
			if !strings.Contains(k, " ") {
				x.keywords[e.Type] = append(x.keywords[e.Type], strings.ToLower(k))
			}
		}
	}
	return x
}

func splitWords(text string) []word {
	var out []word
	for _, raw := range strings.Fields(text) {
		clean := nlp.TrimToken(raw)
		if clean == "" {
			continue
		}
		out = append(out, word{raw: raw, clean: clean, lower: strings.ToLower(clean)})
	}
	return out
}

// extract derives the target and parameter map for an already selected type.
func (x *extractor) extract(t Type, text string) (string, map[string]string) {
	words := splitWords(text)
	params := make(map[string]string)

	switch t {
	case Help:
		params[ParamTopic] = x.topic(words)
		return "", params
	case AIChat, Exit, Unknown:
		return "", params
	}

	trig := x.trigger(t, words)
	target, targetIdx := x.target(t, words, trig)

	// Script arguments are passed through, not read as request words.
	scoped := words
	if t == Run {
		if a := args(words, targetIdx); a != "" {
			params[ParamArgs] = a
			scoped = words[:targetIdx+1]
		}
	}

	params[ParamFileType] = x.fileType(scoped, target)
	params[ParamScope] = scope(scoped)
	x.directory(t, scoped, params)

	if t == Search {
		params[ParamQuery] = query(text, words, trig)
	}
	return target, params
}

// trigger returns the index of the first keyword of t, or -1.
func (x *extractor) trigger(t Type, words []word) int {
	for i, w := range words {
		if isKeyword(w.lower, x.keywords[t]) {
			return i
		}
	}
	if t == Search {
		for i := 1; i < len(words); i++ {
			if words[i].lower == "for" && strings.HasPrefix(words[i-1].lower, "look") {
				return i
			}
		}
	}
	// Phrased requests ("show me the scripts", "get rid of a.txt") use
	// another type's verb; anchor on the first recognizable one.
	for i, w := range words {
		for _, kws := range x.keywords {
			if isKeyword(w.lower, kws) {
				return i
			}
		}
		if w.lower == "of" && i >= 2 && words[i-1].lower == "rid" && words[i-2].lower == "get" {
			return i
		}
	}
	return -1
}

func isKeyword(w string, kws []string) bool {
	for _, k := range kws {
		if w == k {
			return true
		}
		if len(k) >= 4 && strings.HasPrefix(w, k) {
			switch w[len(k):] {
			case "s", "es", "ed", "d", "ing":
				return true
			}
		}
	}
	return false
}

// target prefers a file name, then a name introduced by "called"/"named",
// then the first content word after the trigger. Returns the word index too.
func (x *extractor) target(t Type, words []word, trig int) (string, int) {
	for i, w := range words {
		if nlp.IsFileName(w.clean) {
			return w.clean, i
		}
	}
	for i := 0; i+1 < len(words); i++ {
		if words[i].lower == "called" || words[i].lower == "named" {
			return words[i+1].clean, i + 1
		}
	}
	if trig < 0 {
		return "", -1
	}
	for i := trig + 1; i < len(words); i++ {
		w := words[i]
		if directoryPreps[w.lower] || w.lower == "as" {
			break
		}
		if stopwords[w.lower] || genericNouns[w.lower] || x.fileTypes[w.lower] != "" || !hasLetter(w.clean) {
			continue
		}
		if t == Search && (w.lower == "containing" || w.lower == "contains" || w.lower == "mentioning") {
			continue
		}
		return w.clean, i
	}
	return "", -1
}

func (x *extractor) fileType(words []word, target string) string {
	for _, w := range words {
		if ft := x.fileTypes[w.lower]; ft != "" {
			return ft
		}
	}
	if i := strings.LastIndex(target, "."); i > 0 {
		return suffixTypes[strings.ToLower(target[i:])]
	}
	return ""
}

// scope prefers latest/recent over all.
func scope(words []word) string {
	out := ""
	for _, w := range words {
		switch s := scopeWords[w.lower]; s {
		case "latest", "recent":
			return s
		case "all":
			out = s
		}
	}
	return out
}

// directory records the noun after a directory preposition. Move prefers
// "to"/"into"; Rename reads "to"/"as" as the new name.
func (x *extractor) directory(t Type, words []word, params map[string]string) {
	after := func(i int) string {
		for j := i + 1; j < len(words); j++ {
			switch words[j].lower {
			case "the", "my", "our", "a":
				continue
			}
			return strings.TrimRight(words[j].clean, "/")
		}
		return ""
	}

	if t == Rename {
		for i, w := range words {
			if w.lower == "to" || w.lower == "as" {
				params[ParamNewName] = after(i)
				break
			}
		}
	}
	if t == Move {
		for i, w := range words {
			if w.lower == "to" || w.lower == "into" {
				if d := after(i); d != "" {
					params[ParamDirectory] = d
					return
				}
			}
		}
	}
	for i, w := range words {
		if !directoryPreps[w.lower] || (t == Rename && w.lower == "to") {
			continue
		}
		d := after(i)
		if d == "" || stopwords[strings.ToLower(d)] {
			continue
		}
		params[ParamDirectory] = d
		return
	}
}

// query finds a search term: quoted text, then text after "containing",
// then the words following the trigger.
func query(text string, words []word, trig int) string {
	if m := quoted.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	start := -1
	for i, w := range words {
		if w.lower == "containing" || w.lower == "contains" || w.lower == "mentioning" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		if trig < 0 {
			return ""
		}
		start = trig + 1
		for start < len(words) {
			switch words[start].lower {
			case "for", "the", "all", "a", "an", "occurrences", "of", "text", "term":
				start++
				continue
			}
			break
		}
	}
	var parts []string
	for i := start; i < len(words); i++ {
		switch words[i].lower {
		case "in", "from", "inside", "under":
			return strings.Join(parts, " ")
		}
		parts = append(parts, words[i].clean)
	}
	return strings.Join(parts, " ")
}

// args returns every raw word after a file-name target.
func args(words []word, targetIdx int) string {
	if targetIdx < 0 || targetIdx+1 >= len(words) || !nlp.IsFileName(words[targetIdx].clean) {
		return ""
	}
	parts := make([]string, 0, len(words)-targetIdx-1)
	for _, w := range words[targetIdx+1:] {
		parts = append(parts, w.raw)
	}
	return strings.Join(parts, " ")
}

func (x *extractor) topic(words []word) string {
	for _, w := range words {
		if w.lower == "help" {
			continue
		}
		t, ok := ParseType(w.lower)
		if !ok {
			t, ok = topicAliases[w.lower]
		}
		if !ok {
			if base := strings.TrimSuffix(w.lower, "s"); base != w.lower {
				t, ok = ParseType(base)
			}
		}
		if ok && t != Help && t != Unknown {
			return t.String()
		}
	}
	return ""
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r > 127 {
			return true
		}
	}
	return false
}

func set(words ...string) map[string]bool {
	out := make(map[string]bool, len(words))
	for _, w := range words {
		out[w] = true
	}
	return out
}
