// ABOUTME: Terminal: the read-recognize-dispatch loop that owns the session
// ABOUTME: Contains handler failures and panics; exit, an interrupt or end of input ends the loop

package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/mauromedda/scriptterm/internal/commands"
	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/log"
	"github.com/mauromedda/scriptterm/internal/session"
	"github.com/mauromedda/scriptterm/internal/termfix"
	"github.com/mauromedda/scriptterm/internal/tools"
)

const farewell = "Goodbye!"

// Deps bundles everything the terminal needs.
type Deps struct {
	Recognizer intent.Recognizer
	Registry   *commands.Registry
	Workspace  *tools.Workspace
	Runner     *tools.Runner
	Session    *session.Session

	In  io.Reader
	Out io.Writer

	// Color enables lipgloss styles and glamour markdown.
	Color bool
	// Interactive means In and Out are a terminal; it enables the picker.
	Interactive bool
	// Width is the wrap width for markdown; 0 means 80.
	Width int
	// MaxPerFile caps search matches per file; 0 is unlimited.
	MaxPerFile int
}

// Terminal is the dispatcher. It is not safe for concurrent use.
type Terminal struct {
	recognizer intent.Recognizer
	registry   *commands.Registry
	session    *session.Session
	reader     *LineReader
	in         io.Reader
	out        io.Writer
	palette    palette
	cmdCtx     *commands.CommandContext

	// ctx is the context of the running loop, used by prompts.
	ctx context.Context
}

// New creates a terminal from deps.
func New(d Deps) *Terminal {
	t := &Terminal{
		recognizer: d.Recognizer,
		registry:   d.Registry,
		session:    d.Session,
		reader:     NewLineReader(d.In),
		in:         d.In,
		out:        d.Out,
		palette:    newPalette(d.Out, d.Color),
		ctx:        context.Background(),
	}

	t.cmdCtx = &commands.CommandContext{
		Out:        d.Out,
		Workspace:  d.Workspace,
		Runner:     d.Runner,
		Styles:     t.palette.handlerStyles(),
		MaxPerFile: d.MaxPerFile,
		Strategy:   string(d.Recognizer.Strategy()),
		Confirm:    t.confirm,
		Prompt:     t.prompt,
		ExitFn:     func() { t.session.Terminate("exit") },
	}
	if d.Color {
		w := d.Width
		if w <= 0 {
			w = 80
		}
		// A fixed style; auto detection would query the terminal on stdin.
		t.cmdCtx.Render = NewMarkdownRenderer(w, termfix.MarkdownStyle).Render
	}
	if d.Interactive {
		t.cmdCtx.Pick = t.pick
	}
	return t
}

// Run prints the banner and processes input until the session terminates.
// Exit, interrupt and end of input all return nil; an unreadable input
// source counts as end of input.
func (t *Terminal) Run(ctx context.Context) error {
	t.ctx = ctx
	defer func() { t.ctx = context.Background() }()

	printBanner(t.out, t.palette, t.session.CWD, string(t.recognizer.Strategy()))
	for t.session.Running() {
		fmt.Fprint(t.out, t.palette.paint("prompt", "scriptterm> "))
		line, err := t.reader.ReadLine(ctx)
		if err != nil {
			reason := "interrupt"
			if !errors.Is(err, ErrInterrupted) {
				reason = "end of input"
				if !errors.Is(err, io.EOF) {
					log.Warn("reading input: %v", err)
				}
			}
			fmt.Fprintln(t.out)
			fmt.Fprintln(t.out, t.palette.paint("info", farewell))
			t.session.Terminate(reason)
			log.Info("session terminated: %s", reason)
			return nil
		}
		t.Handle(line)
	}
	log.Info("session terminated: %s", t.session.Reason())
	return nil
}

// Handle processes one line of input. Blank lines are ignored.
func (t *Terminal) Handle(line string) {
	text := strings.TrimSpace(line)
	if text == "" {
		return
	}
	in := t.recognizer.Recognize(text)
	t.session.Append(line)
	log.Debug("intent: %s", in)

	if t.recognizer.Thresholds().Tentative(in) {
		fmt.Fprintln(t.out, t.palette.paint("dim",
			fmt.Sprintf("(interpreting as %s, confidence %.2f)", in.Type(), in.Confidence())))
	}
	t.dispatch(in)
}

// dispatch runs the handler, containing both returned errors and panics.
func (t *Terminal) dispatch(in intent.Intent) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("handler %s panicked: %v\n%s", in.Type(), r, debug.Stack())
			fmt.Fprintln(t.out, t.palette.paint("error", "Error: something went wrong while handling that request."))
		}
	}()
	if err := t.registry.Dispatch(t.cmdCtx, in); err != nil {
		log.Error("handler %s: %v", in.Type(), err)
		fmt.Fprintln(t.out, t.palette.paint("error", "Error: "+err.Error()))
	}
}

func (t *Terminal) confirm(question string) bool {
	answer, ok := t.prompt(question + " [y/N]")
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

func (t *Terminal) prompt(question string) (string, bool) {
	fmt.Fprint(t.out, t.palette.paint("warn", question)+" ")
	line, err := t.reader.ReadLine(t.ctx)
	if err != nil {
		fmt.Fprintln(t.out)
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (t *Terminal) pick(title string, items []string) (string, bool) {
	choice, ok, err := runPicker(title, items, t.in, t.out, t.palette)
	if err != nil {
		log.Warn("picker: %v", err)
		return "", false
	}
	return choice, ok
}
