// ABOUTME: Mutating file operations: create from template, delete, rename, move
// ABOUTME: Every path is confined to the workspace; existing destinations are never overwritten

package tools

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName appends the category's default extension when name has none.
func FileName(c Category, name string) string {
	if filepath.Ext(name) == "" {
		return name + c.DefaultExt()
	}
	return name
}

// Create writes a template for name into the category directory and returns
// the path and content written. The directory is created when missing.
func (w *Workspace) Create(c Category, name string) (string, string, error) {
	name = strings.TrimSpace(name)
	if err := validName(strings.TrimSuffix(name, filepath.Ext(name))); err != nil {
		return "", "", err
	}
	name = FileName(c, name)
	dir := w.Dir(c)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	content := Template(c, name)
	if err := writeNew(path, content, templateMode(c)); err != nil {
		return "", "", err
	}
	return path, content, nil
}

// writeNew creates path exclusively.
func writeNew(path, content string, mode fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	// Umask may have stripped the executable bits.
	return os.Chmod(path, mode)
}

// Delete removes a regular file from a category directory.
func (w *Workspace) Delete(path string) error {
	if err := w.checkSource(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", w.Rel(path), err)
	}
	return nil
}

// Rename gives a file a new name in the same directory and returns the new
// path. The source extension is kept when newName has none.
func (w *Workspace) Rename(path, newName string) (string, error) {
	if err := w.checkSource(path); err != nil {
		return "", err
	}
	newName = strings.TrimSpace(newName)
	if err := validName(strings.TrimSuffix(newName, filepath.Ext(newName))); err != nil {
		return "", err
	}
	if filepath.Ext(newName) == "" {
		newName += filepath.Ext(path)
	}
	dest := filepath.Join(filepath.Dir(path), newName)
	return dest, w.moveFile(path, dest)
}

// Move relocates a file into dir, which is resolved against the workspace
// root or, failing that, matched against a category directory or name.
func (w *Workspace) Move(path, dir string) (string, error) {
	if err := w.checkSource(path); err != nil {
		return "", err
	}
	destDir, err := w.resolveDir(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", w.Rel(destDir), err)
	}
	dest := filepath.Join(destDir, filepath.Base(path))
	return dest, w.moveFile(path, dest)
}

func (w *Workspace) resolveDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("no destination directory")
	}
	for _, c := range w.categories {
		if strings.EqualFold(dir, c.Dir) || strings.EqualFold(dir, c.Name) {
			return w.Dir(c), nil
		}
	}
	abs := filepath.Clean(filepath.Join(w.root, dir))
	if filepath.IsAbs(dir) {
		abs = filepath.Clean(dir)
	}
	if !w.contains(abs) {
		return "", fmt.Errorf("%s: %w", dir, ErrOutsideWorkspace)
	}
	return abs, nil
}

func (w *Workspace) moveFile(src, dest string) error {
	if !w.contains(dest) {
		return fmt.Errorf("%s: %w", dest, ErrOutsideWorkspace)
	}
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("%s: %w", w.Rel(dest), ErrExists)
	}
	if err := os.Rename(src, dest); err != nil {
		return fmt.Errorf("moving %s to %s: %w", w.Rel(src), w.Rel(dest), err)
	}
	return nil
}

func (w *Workspace) checkSource(path string) error {
	if !w.contains(path) {
		return fmt.Errorf("%s: %w", path, ErrOutsideWorkspace)
	}
	if !isFile(path) || !w.InCategoryDir(path) {
		return fmt.Errorf("%s: %w", w.Rel(path), ErrNotFound)
	}
	return nil
}

func validName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return fmt.Errorf("%q must not contain path separators: %w", name, ErrInvalidName)
	}
	return nil
}
