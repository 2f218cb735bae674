// ABOUTME: Handlers that change the filesystem: create, delete, rename, move, organize
// ABOUTME: Destructive actions ask for confirmation first; existing destinations are never overwritten

package commands

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/tools"
)

func createFile(ctx *CommandContext, in intent.Intent) error {
	w := ctx.Workspace
	name, hasName := in.Target()

	var (
		cat   tools.Category
		found bool
	)
	if hasName && filepath.Ext(name) != "" {
		if cat, found = w.CategoryOf(name); !found {
			ctx.fail("Error: unsupported file type %s.", filepath.Ext(name))
			return nil
		}
	} else if ft, ok := in.Param(intent.ParamFileType); ok {
		cat, found = categoryByWord(w, ft)
	}
	if !found {
		answer, ok := ctx.ask("What kind of file? (" + strings.Join(categoryNames(w), ", ") + ")")
		if !ok {
			ctx.warn("File creation cancelled.")
			return nil
		}
		if cat, found = categoryByWord(w, answer); !found {
			ctx.fail("Error: unknown file type %q.", answer)
			return nil
		}
	}
	if !hasName {
		if name, hasName = ctx.ask("What should the " + cat.Name + " file be called?"); !hasName {
			ctx.warn("File creation cancelled.")
			return nil
		}
	}

	path, _, err := w.Create(cat, name)
	switch {
	case errors.Is(err, tools.ErrExists):
		ctx.warn("%s already exists; not overwriting it.", filepath.Join(cat.Dir, tools.FileName(cat, name)))
		return nil
	case errors.Is(err, tools.ErrInvalidName):
		ctx.fail("Error: %v.", err)
		return nil
	case err != nil:
		return err
	}
	ctx.success("Created %s", w.Rel(path))
	return nil
}

// categoryByWord accepts a category name, its directory, or a vocabulary
// word such as "bash" or "docs".
func categoryByWord(w *tools.Workspace, word string) (tools.Category, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	if c, ok := categoryNamed(w, word); ok {
		return c, true
	}
	if ft, ok := intent.DefaultFileTypes[word]; ok {
		if c, err := w.Category(ft); err == nil {
			return c, true
		}
	}
	return tools.Category{}, false
}

func categoryNames(w *tools.Workspace) []string {
	names := make([]string, 0, len(w.Categories()))
	for _, c := range w.Categories() {
		names = append(names, c.Name)
	}
	return names
}

func deleteFile(ctx *CommandContext, in intent.Intent) error {
	path, ok, err := ctx.resolveManaged(in, "delete")
	if err != nil || !ok {
		return err
	}
	rel := ctx.Workspace.Rel(path)
	if !ctx.confirm("Are you sure you want to delete " + rel + "?") {
		ctx.warn("Deletion cancelled.")
		return nil
	}
	if err := ctx.Workspace.Delete(path); err != nil {
		return mutationError(ctx, err)
	}
	ctx.success("Deleted %s", rel)
	return nil
}

func renameFile(ctx *CommandContext, in intent.Intent) error {
	path, ok, err := ctx.resolveManaged(in, "rename")
	if err != nil || !ok {
		return err
	}
	rel := ctx.Workspace.Rel(path)
	newName, ok := in.Param(intent.ParamNewName)
	if !ok {
		if newName, ok = ctx.ask("New name for " + rel + "?"); !ok {
			ctx.warn("Rename cancelled.")
			ctx.info("Usage: rename <file> to <name>")
			return nil
		}
	}
	if !ctx.confirm("Rename " + rel + " to " + newName + "?") {
		ctx.warn("Rename cancelled.")
		return nil
	}
	dest, err := ctx.Workspace.Rename(path, newName)
	if err != nil {
		return mutationError(ctx, err)
	}
	ctx.success("Renamed %s to %s", rel, ctx.Workspace.Rel(dest))
	return nil
}

func moveFile(ctx *CommandContext, in intent.Intent) error {
	path, ok, err := ctx.resolveManaged(in, "move")
	if err != nil || !ok {
		return err
	}
	rel := ctx.Workspace.Rel(path)
	dir, ok := in.Param(intent.ParamDirectory)
	if !ok {
		if dir, ok = ctx.ask("Move " + rel + " to which directory?"); !ok {
			ctx.warn("Move cancelled.")
			ctx.info("Usage: move <file> to <directory>")
			return nil
		}
	}
	if !ctx.confirm("Move " + rel + " to " + dir + "?") {
		ctx.warn("Move cancelled.")
		return nil
	}
	dest, err := ctx.Workspace.Move(path, dir)
	if err != nil {
		return mutationError(ctx, err)
	}
	ctx.success("Moved %s to %s", rel, ctx.Workspace.Rel(dest))
	return nil
}

// mutationError prints the expected failures of a file operation and passes
// anything else up.
func mutationError(ctx *CommandContext, err error) error {
	switch {
	case errors.Is(err, tools.ErrExists):
		ctx.fail("Error: %v; nothing was changed.", err)
	case errors.Is(err, tools.ErrNotFound):
		ctx.fail("Error: %v.", err)
		ctx.info("Use 'list' to see the available files.")
	case errors.Is(err, tools.ErrOutsideWorkspace), errors.Is(err, tools.ErrInvalidName):
		ctx.fail("Error: %v.", err)
	default:
		return err
	}
	return nil
}

func organizeFiles(ctx *CommandContext, _ intent.Intent) error {
	w := ctx.Workspace
	plan, err := w.PlanOrganize()
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		ctx.info("Nothing to organize: no top-level files belong to a category.")
		return nil
	}

	ctx.heading("Organize plan:")
	movable := 0
	for _, m := range plan {
		line := "  " + w.Rel(m.From) + " -> " + w.Rel(m.To)
		if m.Conflict {
			ctx.warn("%s (exists, will skip)", line)
			continue
		}
		movable++
		ctx.info("%s", line)
	}
	if movable == 0 {
		ctx.warn("Every destination already exists; nothing to move.")
		return nil
	}
	if !ctx.confirm("Move these files?") {
		ctx.warn("Organize cancelled.")
		return nil
	}

	moved := 0
	for _, res := range w.ApplyOrganize(plan) {
		name := filepath.Base(res.From)
		dir := filepath.Dir(w.Rel(res.To))
		switch {
		case res.Err == nil:
			moved++
			ctx.success("Moved %s to %s/", name, dir)
		case errors.Is(res.Err, tools.ErrExists):
			ctx.warn("%s already exists in %s/, skipping", name, dir)
		default:
			ctx.fail("Failed to move %s: %v", name, res.Err)
		}
	}
	ctx.success("Organized %d of %d files.", moved, len(plan))
	return nil
}
