// ABOUTME: Tests for the terminal loop: lifecycle, error containment, prompts and styling
// ABOUTME: Drives the loop with scripted stdin and inspects stdout and session state

package interactive

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/mauromedda/scriptterm/internal/commands"
	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/session"
	"github.com/mauromedda/scriptterm/internal/tools"
)

func newTestTerminal(t *testing.T, input string, files map[string]string, color bool) (*Terminal, *bytes.Buffer, string) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	w, err := tools.NewWorkspace(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := intent.NewRecognizer(intent.Config{Strategy: intent.StrategyHeuristic})
	if err != nil {
		t.Fatal(err)
	}
	reg, err := commands.NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	term := New(Deps{
		Recognizer: rec,
		Registry:   reg,
		Workspace:  w,
		Runner:     &tools.Runner{Dir: root},
		Session:    session.New(root),
		In:         strings.NewReader(input),
		Out:        out,
		Color:      color,
	})
	return term, out, root
}

func TestRun_ProcessesUntilExit(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t,
		"list python scripts\n\n   \nshow nothing.md\nexit\nlist\n",
		map[string]string{"python_scripts/a.py": "print('a')\n"}, false)

	if err := term.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := term.session.History()
	want := []string{"list python scripts", "show nothing.md", "exit"}
	if !slices.Equal(got, want) {
		t.Errorf("history = %q, want %q", got, want)
	}
	if term.session.Running() || term.session.Reason() != "exit" {
		t.Errorf("state %v reason %q, want terminated by exit", term.session.State(), term.session.Reason())
	}
	text := out.String()
	for _, s := range []string{"recognizer: heuristic", "a.py", "nothing.md not found", "Exiting scriptterm"} {
		if !strings.Contains(text, s) {
			t.Errorf("output missing %q:\n%s", s, text)
		}
	}
	if strings.Contains(text, farewell) {
		t.Errorf("exit should not print the interrupt farewell:\n%s", text)
	}
}

func TestRun_EndOfInputTerminates(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t, "help", nil, false)
	if err := term.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.session.Reason() != "end of input" {
		t.Errorf("reason = %q", term.session.Reason())
	}
	if term.session.Len() != 1 {
		t.Errorf("unterminated last line not processed: history %q", term.session.History())
	}
	if !strings.Contains(out.String(), farewell) {
		t.Errorf("missing farewell:\n%s", out.String())
	}
}

func TestRun_Interrupt(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t, "list\n", nil, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := term.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.session.Reason() != "interrupt" || term.session.Len() != 0 {
		t.Errorf("reason %q, history %q", term.session.Reason(), term.session.History())
	}
	if !strings.Contains(out.String(), farewell) {
		t.Errorf("missing farewell:\n%s", out.String())
	}
}

func TestHandle_PanickingHandlerKeepsSessionRunning(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t, "list python scripts\nhelp\nexit\n", nil, false)
	// A nil workspace makes every file handler panic.
	term.cmdCtx.Workspace = nil

	if err := term.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "something went wrong") {
		t.Errorf("panic not reported:\n%s", text)
	}
	if !strings.Contains(text, "scriptterm help") {
		t.Errorf("input after the panic not processed:\n%s", text)
	}
	if term.session.Reason() != "exit" {
		t.Errorf("reason = %q, want exit", term.session.Reason())
	}
}

func TestHandle_TentativeNotice(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t, "", nil, false)
	term.Handle("sort")
	if !strings.Contains(out.String(), "(interpreting as organize, confidence 0.40)") {
		t.Errorf("missing tentative notice:\n%s", out.String())
	}

	out.Reset()
	term.Handle("list python scripts")
	if strings.Contains(out.String(), "interpreting as") {
		t.Errorf("confident intent got a notice:\n%s", out.String())
	}
}

func TestConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answer  string
		deleted bool
	}{
		{name: "yes", answer: "y", deleted: true},
		{name: "long yes", answer: "YES", deleted: true},
		{name: "no", answer: "n", deleted: false},
		{name: "blank", answer: "", deleted: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			term, out, root := newTestTerminal(t, "delete old.txt\n"+tt.answer+"\nexit\n",
				map[string]string{"text_files/old.txt": "x"}, false)
			if err := term.Run(context.Background()); err != nil {
				t.Fatal(err)
			}
			_, err := os.Stat(filepath.Join(root, "text_files", "old.txt"))
			if deleted := os.IsNotExist(err); deleted != tt.deleted {
				t.Errorf("deleted = %v, want %v\n%s", deleted, tt.deleted, out.String())
			}
			if !strings.Contains(out.String(), "delete text_files/old.txt? [y/N]") {
				t.Errorf("question not shown:\n%s", out.String())
			}
			// Prompt answers are not session input.
			if term.session.Len() != 2 {
				t.Errorf("history = %q", term.session.History())
			}
		})
	}
}

func TestColor(t *testing.T) {
	t.Parallel()

	plain, plainOut, _ := newTestTerminal(t, "", map[string]string{"python_scripts/a.py": ""}, false)
	plain.Handle("list python scripts")
	if strings.Contains(plainOut.String(), "\x1b[") {
		t.Errorf("colourless output contains escapes: %q", plainOut.String())
	}

	colored, colorOut, _ := newTestTerminal(t, "", map[string]string{"python_scripts/a.py": ""}, true)
	colored.Handle("list python scripts")
	if !strings.Contains(colorOut.String(), "\x1b[") {
		t.Errorf("coloured output has no escapes: %q", colorOut.String())
	}
	if colored.cmdCtx.Render == nil {
		t.Error("colour terminal has no markdown renderer")
	}
}

func TestRun_ReadFailureEndsLikeEndOfInput(t *testing.T) {
	t.Parallel()

	term, out, _ := newTestTerminal(t, "", nil, false)
	term.reader = NewLineReader(iotest.ErrReader(errors.New("device gone")))
	if err := term.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.session.Reason() != "end of input" {
		t.Errorf("reason = %q, want end of input", term.session.Reason())
	}
	if !strings.Contains(out.String(), farewell) {
		t.Errorf("missing farewell:\n%s", out.String())
	}
}
