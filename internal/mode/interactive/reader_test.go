// ABOUTME: Tests for the context-aware line reader
// ABOUTME: Covers line endings, end of input and interrupts during a blocked read

package interactive

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadLine(t *testing.T) {
	t.Parallel()

	lr := NewLineReader(strings.NewReader("first\r\nsecond\nlast"))
	ctx := context.Background()
	for _, want := range []string{"first", "second", "last"} {
		got, err := lr.ReadLine(ctx)
		if err != nil || got != want {
			t.Fatalf("ReadLine = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := lr.ReadLine(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("after input: err = %v, want io.EOF", err)
	}
}

func TestReadLine_InterruptKeepsPendingRead(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	lr := NewLineReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := lr.ReadLine(ctx); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
	if _, err := lr.ReadLine(ctx); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("cancelled context: err = %v, want ErrInterrupted", err)
	}

	go func() { _, _ = pw.Write([]byte("late\n")) }()
	got, err := lr.ReadLine(context.Background())
	if err != nil || got != "late" {
		t.Errorf("ReadLine = %q, %v; want the line from the abandoned read", got, err)
	}
}
