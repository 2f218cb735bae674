// ABOUTME: Context-aware line reader: one read in flight at a time, abandoned on interrupt
// ABOUTME: Between reads nothing consumes stdin, so a full-screen picker can own the terminal

package interactive

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInterrupted is returned when the context is cancelled during a read.
var ErrInterrupted = errors.New("interrupted")

type readResult struct {
	line string
	err  error
}

// LineReader reads lines from an io.Reader without blocking past cancellation.
// It is used from one goroutine.
type LineReader struct {
	r       *bufio.Reader
	pending chan readResult
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. It returns
// ErrInterrupted when ctx is done first, and io.EOF at end of input with no
// pending text. A final unterminated line is returned before io.EOF.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}
	if lr.pending == nil {
		ch := make(chan readResult, 1)
		lr.pending = ch
		go func() {
			line, err := lr.r.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		// The read stays in flight; its result is delivered to the next call.
		return "", ErrInterrupted
	case res := <-lr.pending:
		lr.pending = nil
		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && line != "" {
				return line, nil
			}
			return "", res.err
		}
		return line, nil
	}
}
