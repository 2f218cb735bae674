// ABOUTME: Workspace: the category directories rooted at the working directory
// ABOUTME: Maps file types to directories and extensions; confines all file operations to the root

package tools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrNotFound means a file could not be resolved in any lookup directory.
	ErrNotFound = errors.New("not found")
	// ErrExists means the destination of a write already exists.
	ErrExists = errors.New("already exists")
	// ErrOutsideWorkspace means a path escapes the workspace root.
	ErrOutsideWorkspace = errors.New("outside workspace")
	// ErrUnknownCategory means a file type names no configured category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidName means a new file name is empty or contains a path.
	ErrInvalidName = errors.New("invalid file name")
)

// Category is one kind of file and the directory that holds it.
type Category struct {
	Name        string   // file type: python, shell, markdown, text
	Dir         string   // relative to the workspace root
	Exts        []string // first entry is the default for new files
	Interpreter string   // empty when files are not runnable
}

// DefaultExt returns the extension given to new files.
func (c Category) DefaultExt() string {
	if len(c.Exts) == 0 {
		return ""
	}
	return c.Exts[0]
}

// Matches reports whether name carries one of the category's extensions.
func (c Category) Matches(name string) bool {
	return slices.Contains(c.Exts, strings.ToLower(filepath.Ext(name)))
}

// DefaultCategories returns the built-in layout.
func DefaultCategories() []Category {
	return []Category{
		{Name: "python", Dir: "python_scripts", Exts: []string{".py"}, Interpreter: "python3"},
		{Name: "shell", Dir: "shell_scripts", Exts: []string{".sh", ".bash"}, Interpreter: "bash"},
		{Name: "markdown", Dir: "docs", Exts: []string{".md", ".markdown"}},
		{Name: "text", Dir: "text_files", Exts: []string{".txt", ".json", ".yaml", ".yml"}},
	}
}

// extraLookupDirs are searched after the category directories.
var extraLookupDirs = []string{filepath.Join(".github", "scripts")}

// Workspace resolves and manipulates files under a root directory.
type Workspace struct {
	root       string
	categories []Category
}

// NewWorkspace creates a workspace rooted at root. Nil categories use the defaults.
func NewWorkspace(root string, categories []Category) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root %s: %w", root, err)
	}
	if categories == nil {
		categories = DefaultCategories()
	}
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.Name == "" || c.Dir == "" {
			return nil, fmt.Errorf("category %q: name and dir are required", c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("category %q defined twice", c.Name)
		}
		if filepath.IsAbs(c.Dir) || strings.HasPrefix(filepath.Clean(c.Dir), "..") {
			return nil, fmt.Errorf("category %q: dir %q: %w", c.Name, c.Dir, ErrOutsideWorkspace)
		}
		seen[c.Name] = true
	}
	return &Workspace{root: abs, categories: categories}, nil
}

// Root returns the absolute workspace root.
func (w *Workspace) Root() string { return w.root }

// Categories returns the configured categories in order.
func (w *Workspace) Categories() []Category { return w.categories }

// Category returns the category for a file type.
func (w *Workspace) Category(fileType string) (Category, error) {
	for _, c := range w.categories {
		if c.Name == fileType {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%q: %w", fileType, ErrUnknownCategory)
}

// CategoryOf returns the category whose extensions match name.
func (w *Workspace) CategoryOf(name string) (Category, bool) {
	for _, c := range w.categories {
		if c.Matches(name) {
			return c, true
		}
	}
	return Category{}, false
}

// Dir returns the absolute directory of a category.
func (w *Workspace) Dir(c Category) string {
	return filepath.Join(w.root, c.Dir)
}

// Rel returns path relative to the root, for display.
func (w *Workspace) Rel(path string) string {
	if rel, err := filepath.Rel(w.root, path); err == nil {
		return rel
	}
	return path
}

// contains reports whether path lies inside the workspace root.
func (w *Workspace) contains(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// categoryDirs returns the absolute category directories in order.
func (w *Workspace) categoryDirs() []string {
	dirs := make([]string, 0, len(w.categories))
	for _, c := range w.categories {
		dirs = append(dirs, w.Dir(c))
	}
	return dirs
}

// InCategoryDir reports whether path lies directly inside a category directory.
func (w *Workspace) InCategoryDir(path string) bool {
	return slices.Contains(w.categoryDirs(), filepath.Dir(filepath.Clean(path)))
}

// lookupDirs returns the category dirs, then the extra dirs, then the root.
func (w *Workspace) lookupDirs() []string {
	dirs := w.categoryDirs()
	for _, d := range extraLookupDirs {
		dirs = append(dirs, filepath.Join(w.root, d))
	}
	return append(dirs, w.root)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
