// ABOUTME: Directory listing for categories: regular files with matching extensions, sorted by name
// ABOUTME: Missing directories surface as ErrNotFound so callers can print a friendly message

package tools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Entry is one listed file.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}

// List returns the files of a category, sorted by name. Hidden files and
// files with other extensions are skipped.
func (w *Workspace) List(c Category) ([]Entry, error) {
	dir := w.Dir(c)
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory %s: %w", c.Dir, ErrNotFound)
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	return w.listIn(dir, c), nil
}

// listIn returns the category's files directly inside dir, sorted by name.
func (w *Workspace) listIn(dir string, c Category) []Entry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []Entry
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") || !c.Matches(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Name:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Names returns the names of every listable file across all categories.
func (w *Workspace) Names() []string {
	var names []string
	for _, c := range w.categories {
		entries, err := w.List(c)
		if err != nil {
			continue
		}
		for _, e := range entries {
			names = append(names, e.Name)
		}
	}
	return names
}

// HumanSize formats a byte count with binary units.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 4; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTP"[exp])
}
