// ABOUTME: Output helpers shared by handlers: styled lines, markdown, prompts and not-found guidance
// ABOUTME: Also resolves an intent's target to a file, honoring the latest/recent scope

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/tools"
)

func apply(style func(string) string, s string) string {
	if style == nil {
		return s
	}
	return style(s)
}

func (ctx *CommandContext) line(style func(string) string, format string, args ...any) {
	fmt.Fprintln(ctx.Out, apply(style, fmt.Sprintf(format, args...)))
}

func (ctx *CommandContext) heading(format string, args ...any) {
	ctx.line(ctx.Styles.Heading, format, args...)
}

func (ctx *CommandContext) info(format string, args ...any) {
	ctx.line(ctx.Styles.Info, format, args...)
}

func (ctx *CommandContext) success(format string, args ...any) {
	ctx.line(ctx.Styles.Success, format, args...)
}

func (ctx *CommandContext) warn(format string, args ...any) {
	ctx.line(ctx.Styles.Warn, format, args...)
}

func (ctx *CommandContext) fail(format string, args ...any) {
	ctx.line(ctx.Styles.Error, format, args...)
}

// markdown prints md through the renderer when one is set.
func (ctx *CommandContext) markdown(md string) {
	out := md
	if ctx.Render != nil {
		out = ctx.Render(md)
	}
	fmt.Fprint(ctx.Out, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(ctx.Out)
	}
}

func (ctx *CommandContext) confirm(question string) bool {
	if ctx.Confirm == nil {
		return false
	}
	return ctx.Confirm(question)
}

func (ctx *CommandContext) ask(question string) (string, bool) {
	if ctx.Prompt == nil {
		return "", false
	}
	answer, ok := ctx.Prompt(question)
	answer = strings.TrimSpace(answer)
	return answer, ok && answer != ""
}

// notFound prints the guided message for an unresolved name.
func (ctx *CommandContext) notFound(name string) {
	ctx.fail("Error: %s not found.", name)
	if sugg := ctx.Workspace.Suggest(name); len(sugg) > 0 {
		ctx.info("Did you mean: %s?", strings.Join(sugg, ", "))
	}
	ctx.info("Use 'list' to see the available files.")
}

// resolveTarget maps the intent's target, or its latest/recent scope, to an
// existing file. It prints guidance and returns false when there is none.
func (ctx *CommandContext) resolveTarget(in intent.Intent, verb string) (string, bool, error) {
	return ctx.resolve(in, verb, false)
}

// resolveManaged is resolveTarget for handlers that change files: only files
// directly inside a category directory qualify.
func (ctx *CommandContext) resolveManaged(in intent.Intent, verb string) (string, bool, error) {
	return ctx.resolve(in, verb, true)
}

func (ctx *CommandContext) resolve(in intent.Intent, verb string, managed bool) (string, bool, error) {
	w := ctx.Workspace
	fileType, _ := in.Param(intent.ParamFileType)
	target, hasTarget := in.Target()
	scope, _ := in.Param(intent.ParamScope)

	if scope == "latest" || scope == "recent" {
		path, err := w.FindLatest(fileType, target)
		if err == nil && managed && !w.InCategoryDir(path) {
			err = tools.ErrNotFound
		}
		switch {
		case err == nil:
			return path, true, nil
		case errors.Is(err, tools.ErrNotFound), errors.Is(err, tools.ErrUnknownCategory):
			if !hasTarget {
				ctx.warn("No %s files found.", orAny(fileType))
				ctx.info("Use 'list' to see the available files.")
				return "", false, nil
			}
		default:
			return "", false, err
		}
	}

	if !hasTarget {
		ctx.warn("Which file would you like to %s?", verb)
		ctx.info("Usage: %s <file>", verb)
		return "", false, nil
	}

	lookup := w.Resolve
	if managed {
		lookup = w.ResolveManaged
	}
	path, err := lookup(target, fileType)
	switch {
	case err == nil:
		return path, true, nil
	case errors.Is(err, tools.ErrNotFound):
		ctx.notFound(target)
		return "", false, nil
	case errors.Is(err, tools.ErrOutsideWorkspace):
		ctx.fail("Error: %s is outside the working directory.", target)
		return "", false, nil
	default:
		return "", false, err
	}
}

func orAny(fileType string) string {
	if fileType == "" {
		return "matching"
	}
	return fileType
}

// categoryFor picks the category named by the intent's file type, target
// or directory.
func categoryFor(w *tools.Workspace, in intent.Intent) (tools.Category, bool) {
	if ft, ok := in.Param(intent.ParamFileType); ok {
		if c, err := w.Category(ft); err == nil {
			return c, true
		}
	}
	var names []string
	if t, ok := in.Target(); ok {
		names = append(names, t)
	}
	if d, ok := in.Param(intent.ParamDirectory); ok {
		names = append(names, d)
	}
	for _, n := range names {
		if c, ok := categoryNamed(w, n); ok {
			return c, true
		}
	}
	return tools.Category{}, false
}

// categoryNamed matches name against category names and directories.
func categoryNamed(w *tools.Workspace, name string) (tools.Category, bool) {
	name = strings.TrimSuffix(name, "/")
	for _, c := range w.Categories() {
		if strings.EqualFold(name, c.Name) || strings.EqualFold(name, c.Dir) {
			return c, true
		}
	}
	return tools.Category{}, false
}
