// ABOUTME: Read-only handlers: list category directories, show a file, search contents
// ABOUTME: Output is deterministic for identical directory state

package commands

import (
	"errors"
	"fmt"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/tools"
	"github.com/mauromedda/scriptterm/pkg/tui/width"
)

func listFiles(ctx *CommandContext, in intent.Intent) error {
	w := ctx.Workspace
	cats := w.Categories()
	if c, ok := categoryFor(w, in); ok {
		cats = []tools.Category{c}
	}

	for i, c := range cats {
		if i > 0 {
			fmt.Fprintln(ctx.Out)
		}
		entries, err := w.List(c)
		if errors.Is(err, tools.ErrNotFound) {
			ctx.warn("Directory %s/ does not exist.", c.Dir)
			continue
		}
		if err != nil {
			return err
		}
		ctx.heading("%s (%s/)", c.Name, c.Dir)
		if len(entries) == 0 {
			ctx.info("  (no files)")
			continue
		}
		nameW := 0
		for _, e := range entries {
			nameW = max(nameW, width.VisibleWidth(e.Name))
		}
		for _, e := range entries {
			fmt.Fprintf(ctx.Out, "  %s  %s\n", width.PadRight(e.Name, nameW), apply(ctx.Styles.Dim, tools.HumanSize(e.Size)))
		}
	}
	return nil
}

func showFile(ctx *CommandContext, in intent.Intent) error {
	if isCategoryRequest(ctx.Workspace, in) {
		return listFiles(ctx, in)
	}

	path, ok, err := ctx.resolveTarget(in, "show")
	if err != nil || !ok {
		return err
	}
	content, err := ctx.Workspace.Read(path)
	if errors.Is(err, tools.ErrBinary) {
		ctx.warn("%s is a binary file; not printing it.", ctx.Workspace.Rel(path))
		return nil
	}
	if err != nil {
		return err
	}
	ctx.heading("%s", ctx.Workspace.Rel(path))
	fmt.Fprint(ctx.Out, content)
	if content != "" && content[len(content)-1] != '\n' {
		fmt.Fprintln(ctx.Out)
	}
	return nil
}

func searchFiles(ctx *CommandContext, in intent.Intent) error {
	query, ok := in.Param(intent.ParamQuery)
	if !ok {
		query, ok = in.Target()
	}
	if !ok {
		if query, ok = ctx.ask("What would you like to search for?"); !ok {
			ctx.warn("Nothing to search for.")
			ctx.info("Usage: search <text>")
			return nil
		}
	}

	opts := tools.SearchOptions{MaxPerFile: ctx.MaxPerFile}
	opts.FileType, _ = in.Param(intent.ParamFileType)
	if dir, ok := in.Param(intent.ParamDirectory); ok {
		// A directory naming a category narrows by type instead.
		if c, found := categoryNamed(ctx.Workspace, dir); found {
			opts.FileType = c.Name
		} else {
			opts.Dir = dir
		}
	}

	matches, limited, err := ctx.Workspace.Search(query, opts)
	switch {
	case errors.Is(err, tools.ErrNotFound):
		ctx.warn("Directory %s does not exist.", opts.Dir)
		return nil
	case errors.Is(err, tools.ErrOutsideWorkspace):
		ctx.fail("Error: %s is outside the working directory.", opts.Dir)
		return nil
	case err != nil:
		return err
	}
	if len(matches) == 0 {
		ctx.warn("No matches for %q.", query)
		return nil
	}

	ctx.heading("Matches for %q:", query)
	last := ""
	for _, m := range matches {
		if m.Path != last {
			fmt.Fprintln(ctx.Out, apply(ctx.Styles.Info, ctx.Workspace.Rel(m.Path)))
			last = m.Path
		}
		fmt.Fprintf(ctx.Out, "  %d: %s\n", m.Line, m.Text)
	}
	if limited {
		ctx.warn("Results truncated; narrow the search.")
	}
	return nil
}

// isCategoryRequest reports whether in names a whole category ("show python
// scripts", "show docs") rather than one file.
func isCategoryRequest(w *tools.Workspace, in intent.Intent) bool {
	if scope, _ := in.Param(intent.ParamScope); scope == "latest" || scope == "recent" {
		return false
	}
	if target, ok := in.Target(); ok {
		_, named := categoryNamed(w, target)
		return named
	}
	_, ok := categoryFor(w, in)
	return ok
}
