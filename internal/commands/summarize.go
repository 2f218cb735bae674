// ABOUTME: Summarize handler: lightweight per-category facts about one file
// ABOUTME: Without a target it offers the available documents through the picker

package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
)

func summarizeFile(ctx *CommandContext, in intent.Intent) error {
	_, hasTarget := in.Target()
	_, scoped := in.Param(intent.ParamScope)

	var path string
	if !hasTarget && !scoped {
		var ok bool
		if path, ok = ctx.pickDocument(); !ok {
			return nil
		}
	} else {
		var (
			ok  bool
			err error
		)
		if path, ok, err = ctx.resolveTarget(in, "summarize"); err != nil || !ok {
			return err
		}
	}

	s, err := ctx.Workspace.Summarize(path)
	if err != nil {
		ctx.fail("Error: %v.", err)
		return nil
	}

	ctx.heading("Summary of %s (%s)", ctx.Workspace.Rel(s.Path), s.Kind)
	fmt.Fprintf(ctx.Out, "  Lines: %d  Words: %d  Characters: %d\n", s.Lines, s.Words, s.Chars)
	if s.Description != "" {
		fmt.Fprintf(ctx.Out, "  Description: %s\n", s.Description)
	}
	switch s.Kind {
	case "python":
		fmt.Fprintf(ctx.Out, "  Functions: %d  Classes: %d\n", s.Functions, s.Classes)
		if len(s.Imports) > 0 {
			fmt.Fprintf(ctx.Out, "  Imports: %s\n", strings.Join(s.Imports, ", "))
		}
	case "shell":
		for _, opt := range s.Options {
			fmt.Fprintf(ctx.Out, "  Option: %s\n", opt)
		}
	case "markdown":
		if len(s.Headings) > 0 {
			fmt.Fprintln(ctx.Out, "  Headings:")
			for _, h := range s.Headings {
				fmt.Fprintf(ctx.Out, "    - %s\n", h)
			}
		}
	}
	return nil
}

// documents lists the markdown and text files of the workspace.
func (ctx *CommandContext) documents() []string {
	w := ctx.Workspace
	var docs []string
	for _, ft := range []string{"markdown", "text"} {
		c, err := w.Category(ft)
		if err != nil {
			continue
		}
		entries, err := w.List(c)
		if err != nil {
			continue
		}
		for _, e := range entries {
			docs = append(docs, w.Rel(e.Path))
		}
	}
	return docs
}

// pickDocument asks which document to summarize, through the picker when
// one is available and a numbered prompt otherwise.
func (ctx *CommandContext) pickDocument() (string, bool) {
	docs := ctx.documents()
	if len(docs) == 0 {
		ctx.warn("Which file would you like to summarize?")
		ctx.info("Usage: summarize <file>")
		return "", false
	}

	var choice string
	switch {
	case ctx.Pick != nil:
		var ok bool
		if choice, ok = ctx.Pick("Summarize which document?", docs); !ok {
			ctx.warn("Summarize cancelled.")
			return "", false
		}
	default:
		ctx.heading("Documents:")
		for i, d := range docs {
			fmt.Fprintf(ctx.Out, "  %d. %s\n", i+1, d)
		}
		answer, ok := ctx.ask("Summarize which document? (number)")
		if !ok {
			ctx.warn("Summarize cancelled.")
			return "", false
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(docs) {
			ctx.fail("Error: %q is not a number between 1 and %d.", answer, len(docs))
			return "", false
		}
		choice = docs[n-1]
	}
	return filepath.Join(ctx.Workspace.Root(), choice), true
}
