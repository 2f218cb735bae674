// ABOUTME: Lightweight per-category file summaries: definitions and imports, shell options, headings
// ABOUTME: Always includes line, word and character counts; never attempts semantic analysis

package tools

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const maxSummaryHeadings = 12

// Summary is the result of Summarize.
type Summary struct {
	Path  string
	Kind  string // category name, or "text" when the file matches none
	Lines int
	Words int
	Chars int

	Functions   int
	Classes     int
	Imports     []string
	Description string   // leading comment or docstring
	Options     []string // shell options such as "set -e"
	Headings    []string
}

var (
	pyImport     = regexp.MustCompile(`^(?:from\s+([\w.]+)\s+import|import\s+([\w., ]+))`)
	shellOptions = []struct {
		re   *regexp.Regexp
		name string
	}{
		{regexp.MustCompile(`^\s*set\s+-\w*e`), "set -e (exit on error)"},
		{regexp.MustCompile(`^\s*set\s+-\w*u`), "set -u (error on unset variables)"},
		{regexp.MustCompile(`^\s*set\s+-\w*x`), "set -x (trace commands)"},
		{regexp.MustCompile(`^\s*set\s+.*-\w*o\s+pipefail`), "set -o pipefail"},
	}
)

// Summarize reads a text file and extracts category-specific facts.
func (w *Workspace) Summarize(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("reading %s: %w", w.Rel(path), err)
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return Summary{}, errors.New(w.Rel(path) + " is not a text file")
	}

	text := string(data)
	s := Summary{
		Path:  path,
		Kind:  "text",
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCount(data),
	}
	if c, ok := w.CategoryOf(path); ok {
		s.Kind = c.Name
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	s.Lines = len(lines)

	switch s.Kind {
	case "python":
		summarizePython(&s, lines)
	case "shell":
		summarizeShell(&s, lines)
	case "markdown":
		summarizeMarkdown(&s, lines)
	}
	return s, nil
}

func summarizePython(s *Summary, lines []string) {
	inDoc := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i < 5 && s.Description == "" && strings.HasPrefix(trimmed, `"""`) {
			rest := strings.Trim(trimmed, `"`)
			if rest != "" {
				s.Description = rest
			} else {
				inDoc = true
			}
			continue
		}
		if inDoc {
			if trimmed != "" {
				s.Description = strings.TrimSuffix(trimmed, `"""`)
				inDoc = false
			}
			continue
		}
		switch {
		case strings.HasPrefix(line, "def "), strings.HasPrefix(line, "async def "):
			s.Functions++
		case strings.HasPrefix(line, "class "):
			s.Classes++
		}
		if m := pyImport.FindStringSubmatch(line); m != nil {
			mods := m[1]
			if mods == "" {
				mods = m[2]
			}
			for _, mod := range strings.Split(mods, ",") {
				f := strings.Fields(mod)
				if len(f) > 0 && !slices.Contains(s.Imports, f[0]) {
					s.Imports = append(s.Imports, f[0])
				}
			}
		}
	}
}

func summarizeShell(s *Summary, lines []string) {
	var comment []string
	leading := true
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i == 0 && strings.HasPrefix(trimmed, "#!") {
			continue
		}
		if leading {
			switch {
			case strings.HasPrefix(trimmed, "#"):
				if c := strings.TrimSpace(strings.TrimLeft(trimmed, "#")); c != "" {
					comment = append(comment, c)
				}
				continue
			case trimmed == "" && len(comment) == 0:
				continue
			default:
				leading = false
			}
		}
		for _, opt := range shellOptions {
			if opt.re.MatchString(line) && !slices.Contains(s.Options, opt.name) {
				s.Options = append(s.Options, opt.name)
			}
		}
	}
	s.Description = strings.Join(comment, " ")
}

func summarizeMarkdown(s *Summary, lines []string) {
	fence := false
	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			fence = !fence
			continue
		}
		if fence || !strings.HasPrefix(line, "#") {
			continue
		}
		level := len(line) - len(strings.TrimLeft(line, "#"))
		title := strings.TrimSpace(line[level:])
		if level > 6 || title == "" {
			continue
		}
		if len(s.Headings) < maxSummaryHeadings {
			s.Headings = append(s.Headings, strings.Repeat("  ", level-1)+title)
		}
		if s.Description == "" && level == 1 {
			s.Description = title
		}
	}
}
