// ABOUTME: Tests for create, read, delete, rename, move and organize
// ABOUTME: Verifies template round-trips, refusal to overwrite, and workspace confinement

package tools

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreate_RoundTrip(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, nil)
	for _, ft := range []string{"python", "shell", "markdown", "text"} {
		c, err := w.Category(ft)
		if err != nil {
			t.Fatal(err)
		}
		path, content, err := w.Create(c, "hello")
		if err != nil {
			t.Fatalf("Create(%s): %v", ft, err)
		}
		if filepath.Base(path) != "hello"+c.DefaultExt() {
			t.Errorf("Create(%s) path = %s", ft, path)
		}
		got, err := w.Read(path)
		if err != nil {
			t.Fatalf("Read(%s): %v", path, err)
		}
		if got != content || got != Template(c, "hello"+c.DefaultExt()) {
			t.Errorf("%s round trip mismatch:\n got %q\nwant %q", ft, got, content)
		}
		if _, _, err := w.Create(c, "hello"); !errors.Is(err, ErrExists) {
			t.Errorf("second Create(%s) err = %v; want ErrExists", ft, err)
		}
	}

	shell, _ := w.Category("shell")
	info, err := os.Stat(filepath.Join(w.Dir(shell), "hello.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("shell template mode = %v; want executable", info.Mode().Perm())
	}
}

func TestCreate_RejectsPathNames(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, nil)
	c, _ := w.Category("text")
	for _, name := range []string{"../escape", "a/b", "", "  ", "..", ".txt", "."} {
		if _, _, err := w.Create(c, name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Create(%q) err = %v; want ErrInvalidName", name, err)
		}
	}
	if entries, err := os.ReadDir(w.Dir(c)); err == nil && len(entries) > 0 {
		t.Errorf("rejected names left files behind: %v", entries)
	}
}

func TestRead_Binary(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{"text_files/blob.txt": "ab\x00cd"})
	_, err := w.Read(filepath.Join(w.Root(), "text_files", "blob.txt"))
	if !errors.Is(err, ErrBinary) {
		t.Errorf("Read(binary) err = %v; want ErrBinary", err)
	}
	if _, err := w.Read(filepath.Join(w.Root(), "nope.txt")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read(missing) err = %v; want ErrNotFound", err)
	}
}

func TestDeleteRenameMove(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"python_scripts/a.py": "a",
		"python_scripts/b.py": "b",
		"python_scripts/c.py": "c",
		"archive/c.py":        "old c",
	})
	dir := filepath.Join(w.Root(), "python_scripts")

	if err := w.Delete(filepath.Join(dir, "a.py")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if isFile(filepath.Join(dir, "a.py")) {
		t.Error("a.py still exists after Delete")
	}
	if err := w.Delete(filepath.Join(dir, "a.py")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) err = %v; want ErrNotFound", err)
	}

	got, err := w.Rename(filepath.Join(dir, "b.py"), "renamed")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got != filepath.Join(dir, "renamed.py") || !isFile(got) {
		t.Errorf("Rename = %q; want renamed.py to exist", got)
	}
	for _, bad := range []string{"", ".py", "../up"} {
		if _, err := w.Rename(got, bad); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Rename(%q) err = %v; want ErrInvalidName", bad, err)
		}
	}
	if _, err := w.Rename(got, "c.py"); !errors.Is(err, ErrExists) {
		t.Errorf("Rename onto existing err = %v; want ErrExists", err)
	}

	if _, err := w.Move(filepath.Join(dir, "c.py"), "archive"); !errors.Is(err, ErrExists) {
		t.Errorf("Move onto existing err = %v; want ErrExists", err)
	}
	moved, err := w.Move(got, "docs")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if moved != filepath.Join(w.Root(), "docs", "renamed.py") {
		t.Errorf("Move = %q", moved)
	}
	moved, err = w.Move(moved, "shell")
	if err != nil || filepath.Dir(moved) != filepath.Join(w.Root(), "shell_scripts") {
		t.Errorf("Move to category name = %q, %v", moved, err)
	}
	if _, err := w.Move(moved, "../../outside"); !errors.Is(err, ErrOutsideWorkspace) {
		t.Errorf("Move outside err = %v; want ErrOutsideWorkspace", err)
	}
	if err := w.Delete("/etc/hostname"); !errors.Is(err, ErrOutsideWorkspace) {
		t.Errorf("Delete outside err = %v; want ErrOutsideWorkspace", err)
	}
}

func TestOrganize(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"loose.py":             "x",
		"notes.md":             "# n",
		"config.yaml":          "a: 1",
		"image.png":            "png",
		".env.txt":             "hidden",
		"dup.sh":               "new",
		"shell_scripts/dup.sh": "old",
	})

	plan, err := w.PlanOrganize()
	if err != nil {
		t.Fatalf("PlanOrganize: %v", err)
	}
	if len(plan) != 4 {
		t.Fatalf("plan = %+v; want 4 moves", plan)
	}
	for _, m := range plan {
		if filepath.Base(m.From) == "dup.sh" != m.Conflict {
			t.Errorf("move %s conflict = %v", filepath.Base(m.From), m.Conflict)
		}
	}

	results := w.ApplyOrganize(plan)
	for _, r := range results {
		name := filepath.Base(r.From)
		if name == "dup.sh" {
			if !errors.Is(r.Err, ErrExists) {
				t.Errorf("dup.sh err = %v; want ErrExists", r.Err)
			}
			continue
		}
		if r.Err != nil || !isFile(r.To) {
			t.Errorf("%s not moved: %v", name, r.Err)
		}
	}
	if !isFile(filepath.Join(w.Root(), "text_files", "config.yaml")) {
		t.Error("config.yaml not in text_files")
	}
	if !isFile(filepath.Join(w.Root(), "image.png")) {
		t.Error("image.png should stay put")
	}
}
