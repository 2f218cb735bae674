// ABOUTME: Tests for workspace layout, resolution order, listing and latest-file lookup
// ABOUTME: Each test builds its own temp workspace so they can run in parallel

package tools

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestWorkspace creates a temp root populated with files (relative path -> content).
func newTestWorkspace(t *testing.T, files map[string]string) *Workspace {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	w, err := NewWorkspace(root, nil)
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	return w
}

func TestNewWorkspace_RejectsBadCategories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tests := []struct {
		name string
		cats []Category
	}{
		{"missing dir", []Category{{Name: "python"}}},
		{"duplicate", []Category{{Name: "a", Dir: "x"}, {Name: "a", Dir: "y"}}},
		{"escapes root", []Category{{Name: "a", Dir: "../elsewhere"}}},
		{"absolute", []Category{{Name: "a", Dir: "/tmp"}}},
	}
	for _, tt := range tests {
		if _, err := NewWorkspace(root, tt.cats); err == nil {
			t.Errorf("%s: NewWorkspace accepted %+v", tt.name, tt.cats)
		}
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, nil)
	c, err := w.Category("shell")
	if err != nil || c.Dir != "shell_scripts" {
		t.Fatalf("Category(shell) = %+v, %v", c, err)
	}
	if _, err := w.Category("cobol"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Category(cobol) err = %v; want ErrUnknownCategory", err)
	}
	if c, ok := w.CategoryOf("Notes.MD"); !ok || c.Name != "markdown" {
		t.Errorf("CategoryOf(Notes.MD) = %+v, %v", c, ok)
	}
	if _, ok := w.CategoryOf("image.png"); ok {
		t.Error("CategoryOf(image.png) matched a category")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"python_scripts/tool.py":      "print(1)",
		"shell_scripts/deploy.sh":     "echo hi",
		".github/scripts/organize.py": "pass",
		"top.py":                      "pass",
		"docs/tool.md":                "# tool",
		"text_files/tool.py":          "shadowed",
	})
	root := w.Root()

	tests := []struct {
		name     string
		fileType string
		want     string
	}{
		{"tool.py", "", "python_scripts/tool.py"},
		{"deploy.sh", "", "shell_scripts/deploy.sh"},
		{"organize.py", "", ".github/scripts/organize.py"},
		{"top.py", "", "top.py"},
		{"deploy", "", "shell_scripts/deploy.sh"},
		{"tool", "markdown", "docs/tool.md"},
		{"tool", "", "python_scripts/tool.py"},
		{"python_scripts/tool.py", "", "python_scripts/tool.py"},
	}
	for _, tt := range tests {
		got, err := w.Resolve(tt.name, tt.fileType)
		if err != nil {
			t.Errorf("Resolve(%q, %q): %v", tt.name, tt.fileType, err)
			continue
		}
		if want := filepath.Join(root, tt.want); got != want {
			t.Errorf("Resolve(%q, %q) = %q; want %q", tt.name, tt.fileType, got, want)
		}
	}

	if _, err := w.Resolve("ghost.py", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve(ghost.py) err = %v; want ErrNotFound", err)
	}
	if _, err := w.Resolve("../../etc/passwd", ""); !errors.Is(err, ErrOutsideWorkspace) {
		t.Errorf("Resolve(../../etc/passwd) err = %v; want ErrOutsideWorkspace", err)
	}
}

func TestResolveManaged(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"python_scripts/tool.py":      "print(1)",
		".github/scripts/organize.py": "pass",
		"top.py":                      "pass",
		"deploy":                      "root file without suffix",
		"shell_scripts/deploy.sh":     "echo hi",
		"internal/secret.go":          "package secret",
	})
	root := w.Root()

	for name, want := range map[string]string{
		"tool.py":                "python_scripts/tool.py",
		"tool":                   "python_scripts/tool.py",
		"deploy":                 "shell_scripts/deploy.sh",
		"python_scripts/tool.py": "python_scripts/tool.py",
	} {
		got, err := w.ResolveManaged(name, "")
		if err != nil || got != filepath.Join(root, want) {
			t.Errorf("ResolveManaged(%q) = %q, %v; want %s", name, got, err, want)
		}
	}

	for _, name := range []string{"top.py", "organize.py", "internal/secret.go", ".github/scripts/organize.py"} {
		if _, err := w.ResolveManaged(name, ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("ResolveManaged(%q) err = %v; want ErrNotFound", name, err)
		}
	}
	if _, err := w.ResolveManaged("../../etc/passwd", ""); !errors.Is(err, ErrOutsideWorkspace) {
		t.Errorf("ResolveManaged(../../etc/passwd) err = %v; want ErrOutsideWorkspace", err)
	}

	if err := w.Delete(filepath.Join(root, "top.py")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(root file) err = %v; want ErrNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(root, "top.py")); err != nil {
		t.Errorf("root file removed: %v", err)
	}
}

func TestList_ExactlyCategoryFiles(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"python_scripts/a.py":       "a",
		"python_scripts/b.py":       "bb",
		"python_scripts/.hidden.py": "h",
		"python_scripts/notes.txt":  "n",
		"shell_scripts/c.sh":        "c",
		"c.sh":                      "c",
	})
	c, _ := w.Category("python")
	entries, err := w.List(c)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "a.py" || entries[1].Name != "b.py" {
		t.Fatalf("List = %+v; want a.py, b.py", entries)
	}
	if entries[1].Size != 2 {
		t.Errorf("b.py size = %d; want 2", entries[1].Size)
	}

	md, _ := w.Category("markdown")
	if _, err := w.List(md); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(missing dir) err = %v; want ErrNotFound", err)
	}
}

func TestFindLatest(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"docs/old.md":         "# old",
		"docs/new.md":         "# new",
		"python_scripts/x.py": "x",
	})
	past := time.Now().Add(-time.Hour)
	for _, rel := range []string{"docs/old.md", "python_scripts/x.py"} {
		if err := os.Chtimes(filepath.Join(w.Root(), rel), past, past); err != nil {
			t.Fatal(err)
		}
	}

	got, err := w.FindLatest("markdown", "")
	if err != nil || filepath.Base(got) != "new.md" {
		t.Errorf("FindLatest(markdown) = %q, %v; want new.md", got, err)
	}
	got, err = w.FindLatest("", "")
	if err != nil || filepath.Base(got) != "new.md" {
		t.Errorf("FindLatest(any) = %q, %v; want new.md", got, err)
	}
	if _, err := w.FindLatest("shell", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindLatest(shell) err = %v; want ErrNotFound", err)
	}
	got, err = w.FindLatest("", "OLD")
	if err != nil || filepath.Base(got) != "old.md" {
		t.Errorf("FindLatest(contains OLD) = %q, %v; want old.md", got, err)
	}
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:       "0 B",
		1023:    "1023 B",
		1536:    "1.5 KB",
		1 << 20: "1.0 MB",
	}
	for in, want := range tests {
		if got := HumanSize(in); got != want {
			t.Errorf("HumanSize(%d) = %q; want %q", in, got, want)
		}
	}
}
