// ABOUTME: Entry point for scriptterm: loads settings, builds the recognizer and runs the terminal loop
// ABOUTME: Ctrl+C and end of input end the session; startup failures exit with status 1

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/scriptterm/internal/termfix"

	"github.com/mauromedda/scriptterm/internal/commands"
	"github.com/mauromedda/scriptterm/internal/config"
	"github.com/mauromedda/scriptterm/internal/intent"
	stlog "github.com/mauromedda/scriptterm/internal/log"
	"github.com/mauromedda/scriptterm/internal/mode/interactive"
	"github.com/mauromedda/scriptterm/internal/nlp"
	"github.com/mauromedda/scriptterm/internal/session"
	"github.com/mauromedda/scriptterm/internal/tools"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return err
	}
	// Validated by Load.
	level, _ := stlog.ParseLevel(settings.LogLevel)
	stlog.SetLevel(level)

	categories := settings.WorkspaceCategories()
	workspace, err := tools.NewWorkspace(cwd, categories)
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}

	words := make([]string, 0, 2*len(categories))
	for _, c := range categories {
		words = append(words, c.Name, c.Dir)
	}
	recognizer, err := intent.NewRecognizer(intent.Config{
		Strategy:   settings.Strategy(),
		Thresholds: settings.Thresholds(),
		Pipeline:   nlp.NewRuleBased(nlp.Options{Categories: words}),
	})
	if err != nil {
		return fmt.Errorf("recognizer: %w", err)
	}
	stlog.Info("recognizer strategy: %s", recognizer.Strategy())

	registry, err := commands.NewRegistry()
	if err != nil {
		return fmt.Errorf("commands: %w", err)
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	width := 80
	if stdoutTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	t := interactive.New(interactive.Deps{
		Recognizer:  recognizer,
		Registry:    registry,
		Workspace:   workspace,
		Runner:      &tools.Runner{Interpreters: settings.Interpreters(), Dir: cwd},
		Session:     session.New(cwd),
		In:          os.Stdin,
		Out:         os.Stdout,
		Color:       settings.UseColor(stdoutTTY),
		Interactive: stdinTTY && stdoutTTY,
		Width:       width,
		MaxPerFile:  settings.Search.MaxMatchesPerFile,
	})
	return t.Run(ctx)
}
