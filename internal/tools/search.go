// ABOUTME: Case-insensitive substring search across category directories
// ABOUTME: Skips files that are not valid UTF-8 text; reports 1-based line numbers

package tools

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	maxMatches    = 10000
	maxSearchSize = 10 * 1024 * 1024
)

// errMatchLimitReached stops the walk early.
var errMatchLimitReached = fmt.Errorf("match limit reached (%d)", maxMatches)

// Match is one matching line.
type Match struct {
	Path string
	Line int // 1-based
	Text string
}

// SearchOptions narrows a search.
type SearchOptions struct {
	FileType   string // restrict to one category; empty searches all
	Dir        string // restrict to one directory under the root
	MaxPerFile int    // 0 means unlimited
}

// Search finds every line containing query, ignoring case. Results are in
// directory order, then path order, then line order. The returned bool
// reports whether the global match limit cut the results short.
func (w *Workspace) Search(query string, opts SearchOptions) ([]Match, bool, error) {
	if strings.TrimSpace(query) == "" {
		return nil, false, errors.New("empty search query")
	}
	dirs, filter, err := w.searchScope(opts)
	if err != nil {
		return nil, false, err
	}

	fold := cases.Fold()
	needle := fold.String(query)
	var matches []Match
	for _, dir := range dirs {
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // missing or unreadable entries are skipped
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || (filter != nil && !filter(d.Name())) {
				return nil
			}
			return searchFile(path, needle, fold, opts.MaxPerFile, &matches)
		})
		if errors.Is(walkErr, errMatchLimitReached) {
			return matches, true, nil
		}
		if walkErr != nil {
			return matches, false, fmt.Errorf("walking %s: %w", dir, walkErr)
		}
	}
	return matches, false, nil
}

func (w *Workspace) searchScope(opts SearchOptions) ([]string, func(string) bool, error) {
	var filter func(string) bool
	if opts.FileType != "" {
		c, err := w.Category(opts.FileType)
		if err != nil {
			return nil, nil, err
		}
		filter = c.Matches
		if opts.Dir == "" {
			return []string{w.Dir(c)}, filter, nil
		}
	}
	if opts.Dir != "" {
		dir := filepath.Clean(filepath.Join(w.root, opts.Dir))
		if !w.contains(dir) {
			return nil, nil, fmt.Errorf("%s: %w", opts.Dir, ErrOutsideWorkspace)
		}
		if !isDir(dir) {
			return nil, nil, fmt.Errorf("directory %s: %w", opts.Dir, ErrNotFound)
		}
		return []string{dir}, filter, nil
	}
	dirs := make([]string, 0, len(w.categories))
	for _, c := range w.categories {
		dirs = append(dirs, w.Dir(c))
	}
	return dirs, filter, nil
}

// searchFile appends matches from one file. Binary and non-UTF-8 files are
// skipped silently.
func searchFile(path, needle string, fold cases.Caser, maxPerFile int, matches *[]Match) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() > maxSearchSize {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil || bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxSearchSize)
	lineNum, inFile := 0, 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.Contains(fold.String(line), needle) {
			continue
		}
		*matches = append(*matches, Match{Path: path, Line: lineNum, Text: line})
		inFile++
		if len(*matches) >= maxMatches {
			return errMatchLimitReached
		}
		if maxPerFile > 0 && inFile >= maxPerFile {
			break
		}
	}
	return nil
}
