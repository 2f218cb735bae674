// ABOUTME: Script runner: executes a file with its category interpreter, capturing stdout and stderr
// ABOUTME: Each stream is capped at 10MB; the exit code is reported, never turned into an error

package tools

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

const maxRunOutput = 10 * 1024 * 1024 // 10MB per stream

// limitedWriter keeps the first limit bytes and discards the rest, so a
// chatty child never blocks on a full pipe.
type limitedWriter struct {
	w        io.Writer
	limit    int
	written  int
	exceeded bool
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	remaining := lw.limit - lw.written
	if remaining <= 0 {
		lw.exceeded = len(p) > 0 || lw.exceeded
		return len(p), nil
	}
	chunk := p
	if len(chunk) > remaining {
		chunk = chunk[:remaining]
		lw.exceeded = true
	}
	n, err := lw.w.Write(chunk)
	lw.written += n
	if err != nil {
		return n, err
	}
	return len(p), nil
}

// RunResult is the captured outcome of one process.
type RunResult struct {
	Command   []string
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// Runner executes scripts. It holds no per-run state.
type Runner struct {
	// Interpreters overrides the category interpreter by file type.
	Interpreters map[string]string
	// Dir is the working directory of the child; empty inherits ours.
	Dir string
}

// Command builds the argv for running path with the given category.
func (r *Runner) Command(c Category, path string, args []string) ([]string, error) {
	interp := c.Interpreter
	if v, ok := r.Interpreters[c.Name]; ok && v != "" {
		interp = v
	}
	if interp == "" {
		return nil, fmt.Errorf("%s files are not runnable", c.Name)
	}
	return append(append(strings.Fields(interp), path), sanitizeArgs(args)...), nil
}

// Run executes argv and waits for it to exit. There is no timeout: the call
// blocks until the child finishes. A non-zero exit is reported in ExitCode.
func (r *Runner) Run(argv []string) (RunResult, error) {
	if len(argv) == 0 {
		return RunResult{}, errors.New("empty command")
	}
	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return RunResult{}, fmt.Errorf("interpreter %s not found on PATH: %w", argv[0], err)
	}

	cmd := exec.Command(bin, argv[1:]...)
	cmd.Dir = r.Dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return RunResult{}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return RunResult{}, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return RunResult{}, fmt.Errorf("starting %s: %w", filepath.Base(bin), err)
	}

	var outBuf, errBuf bytes.Buffer
	outW := &limitedWriter{w: &outBuf, limit: maxRunOutput}
	errW := &limitedWriter{w: &errBuf, limit: maxRunOutput}

	// Both pipes must be drained before Wait closes them.
	var g errgroup.Group
	g.Go(func() error { _, err := io.Copy(outW, stdout); return err })
	g.Go(func() error { _, err := io.Copy(errW, stderr); return err })
	copyErr := g.Wait()

	res := RunResult{
		Command:   argv,
		Stdout:    outBuf.String(),
		Stderr:    errBuf.String(),
		Truncated: outW.exceeded || errW.exceeded,
	}

	waitErr := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("waiting for %s: %w", filepath.Base(bin), waitErr)
	}
	if copyErr != nil {
		return res, fmt.Errorf("reading output: %w", copyErr)
	}
	return res, nil
}

// sanitizeArgs drops NUL and other control characters from arguments.
func sanitizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		a = strings.Map(func(r rune) rune {
			if r < 32 && r != '\t' {
				return -1
			}
			return r
		}, a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}
