// ABOUTME: Tests for the script runner: separate streams, exit codes, args, and output caps
// ABOUTME: Uses bash scripts written into temp workspaces

package tools

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "s.sh")
	if err := os.WriteFile(p, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func requireBash(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
}

func TestRunner_SeparateStreams(t *testing.T) {
	t.Parallel()
	requireBash(t)

	shell := DefaultCategories()[1]
	path := writeScript(t, "echo out\necho err >&2\nexit 3\n")
	r := &Runner{}
	argv, err := r.Command(shell, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(argv)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "out\n" || res.Stderr != "err\n" {
		t.Errorf("stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d; want 3", res.ExitCode)
	}
}

func TestRunner_Args(t *testing.T) {
	t.Parallel()
	requireBash(t)

	shell := DefaultCategories()[1]
	path := writeScript(t, `printf '%s|' "$@"`)
	r := &Runner{}
	argv, err := r.Command(shell, path, []string{"--dry-run", "a\x00b", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	res, err := r.Run(argv)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "--dry-run|ab|-v|" {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

func TestRunner_Command(t *testing.T) {
	t.Parallel()

	r := &Runner{Interpreters: map[string]string{"python": "python3 -u"}}
	py := DefaultCategories()[0]
	argv, err := r.Command(py, "x.py", []string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(argv, " ") != "python3 -u x.py a" {
		t.Errorf("argv = %q", argv)
	}
	if _, err := r.Command(DefaultCategories()[2], "x.md", nil); err == nil {
		t.Error("markdown should not be runnable")
	}
	if _, err := r.Run(nil); err == nil {
		t.Error("Run(nil) succeeded")
	}
	if _, err := r.Run([]string{"definitely-not-an-interpreter-xyz"}); err == nil {
		t.Error("missing interpreter accepted")
	}
}

func TestLimitedWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lw := &limitedWriter{w: &buf, limit: 5}
	for _, chunk := range []string{"abc", "defg", "hij"} {
		n, err := lw.Write([]byte(chunk))
		if err != nil || n != len(chunk) {
			t.Fatalf("Write(%q) = %d, %v", chunk, n, err)
		}
	}
	if buf.String() != "abcde" || !lw.exceeded {
		t.Errorf("buf = %q exceeded = %v", buf.String(), lw.exceeded)
	}
}
