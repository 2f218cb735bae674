// ABOUTME: File resolution: suffix-specific directories, then fallback directories, then inferred suffixes
// ABOUTME: Also finds the most recently modified file of a category

package tools

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve finds an existing file for name. fileType, when known, narrows the
// first directories checked. Returns an error wrapping ErrNotFound on failure.
func (w *Workspace) Resolve(name, fileType string) (string, error) {
	return w.resolve(name, fileType, false)
}

// ResolveManaged is Resolve restricted to files directly inside a category
// directory. Files at the root, in the extra lookup directories or at other
// paths are reported as ErrNotFound.
func (w *Workspace) ResolveManaged(name, fileType string) (string, error) {
	return w.resolve(name, fileType, true)
}

func (w *Workspace) resolve(name, fileType string, managed bool) (string, error) {
	name = strings.TrimSpace(NormalizeSpaces(name))
	if name == "" {
		return "", fmt.Errorf("empty name: %w", ErrNotFound)
	}

	if strings.ContainsRune(name, '/') || filepath.IsAbs(name) {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(w.root, path)
		}
		path = filepath.Clean(path)
		if !w.contains(path) {
			return "", fmt.Errorf("%s: %w", name, ErrOutsideWorkspace)
		}
		if managed && !w.InCategoryDir(path) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		if found, ok := firstFile(path); ok {
			return found, nil
		}
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	fallback := w.lookupDirs()
	if managed {
		fallback = w.categoryDirs()
	}
	for _, dir := range w.candidateDirs(name, fileType, fallback) {
		if found, ok := firstFile(filepath.Join(dir, name)); ok {
			return found, nil
		}
	}

	if filepath.Ext(name) == "" {
		for _, c := range w.inferCategories(fileType) {
			for _, ext := range c.Exts {
				for _, dir := range append([]string{w.Dir(c)}, fallback...) {
					if found, ok := firstFile(filepath.Join(dir, name+ext)); ok {
						return found, nil
					}
				}
			}
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// candidateDirs orders lookup directories: the category named by fileType,
// the category matching the name's suffix, then the fallback directories.
func (w *Workspace) candidateDirs(name, fileType string, fallback []string) []string {
	var dirs []string
	if c, err := w.Category(fileType); err == nil {
		dirs = append(dirs, w.Dir(c))
	}
	if c, ok := w.CategoryOf(name); ok {
		dirs = append(dirs, w.Dir(c))
	}
	return dedupe(append(dirs, fallback...))
}

func (w *Workspace) inferCategories(fileType string) []Category {
	if c, err := w.Category(fileType); err == nil {
		return []Category{c}
	}
	return w.categories
}

// firstFile tries each name variant of path and returns the first regular file.
func firstFile(path string) (string, bool) {
	dir, base := filepath.Split(path)
	for _, v := range nameVariants(base) {
		if p := filepath.Join(dir, v); isFile(p) {
			return p, true
		}
	}
	return "", false
}

// FindLatest returns the most recently modified file of a category, or of
// any category when fileType is empty, searching the category directories
// and the root. A non-empty contains keeps only names containing it,
// ignoring case.
func (w *Workspace) FindLatest(fileType, contains string) (string, error) {
	if fileType != "" {
		if _, err := w.Category(fileType); err != nil {
			return "", err
		}
	}
	cats := w.inferCategories(fileType)
	needle := strings.ToLower(contains)
	var (
		best     string
		bestTime int64
	)
	consider := func(e Entry) {
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			return
		}
		if t := e.ModTime.UnixNano(); best == "" || t > bestTime {
			best, bestTime = e.Path, t
		}
	}
	for _, c := range cats {
		entries, err := w.List(c)
		if err != nil {
			continue
		}
		for _, e := range entries {
			consider(e)
		}
		for _, e := range w.listIn(w.root, c) {
			consider(e)
		}
	}
	if best == "" {
		return "", fmt.Errorf("no %s files: %w", orAny(fileType), ErrNotFound)
	}
	return best, nil
}

func orAny(fileType string) string {
	if fileType == "" {
		return "matching"
	}
	return fileType
}

func dedupe(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	out := dirs[:0]
	for _, d := range dirs {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
