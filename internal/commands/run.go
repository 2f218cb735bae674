// ABOUTME: Run handler: resolve a script, pick its interpreter, execute it and print both streams
// ABOUTME: Non-zero exit codes are displayed, never raised

package commands

import (
	"fmt"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/log"
)

func runScript(ctx *CommandContext, in intent.Intent) error {
	path, ok, err := ctx.resolveTarget(in, "run")
	if err != nil || !ok {
		return err
	}
	w := ctx.Workspace
	c, known := w.CategoryOf(path)
	if !known {
		ctx.fail("Error: don't know how to run %s.", w.Rel(path))
		return nil
	}

	var args []string
	if a, ok := in.Param(intent.ParamArgs); ok {
		args = strings.Fields(a)
	}
	argv, err := ctx.Runner.Command(c, path, args)
	if err != nil {
		ctx.fail("Error: %v.", err)
		return nil
	}

	ctx.info("Running %s...", w.Rel(path))
	log.Debug("run: %s", strings.Join(argv, " "))
	res, err := ctx.Runner.Run(argv)
	if err != nil && res.Command == nil {
		// The process never started.
		ctx.fail("Error: %v", err)
		return nil
	}

	if res.Stdout != "" {
		ctx.heading("stdout:")
		printBlock(ctx, res.Stdout)
	}
	if res.Stderr != "" {
		ctx.heading("stderr:")
		printBlock(ctx, res.Stderr)
	}
	if res.Truncated {
		ctx.warn("Output was truncated.")
	}
	if err != nil {
		ctx.fail("Error: %v", err)
		return nil
	}
	if res.ExitCode == 0 {
		ctx.success("Script finished (exit code 0).")
	} else {
		ctx.warn("Script exited with code %d.", res.ExitCode)
	}
	return nil
}

func printBlock(ctx *CommandContext, s string) {
	fmt.Fprint(ctx.Out, s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(ctx.Out)
	}
}
