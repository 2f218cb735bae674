// ABOUTME: Reads a resolved file for display, verbatim, refusing binary content
// ABOUTME: Binary detection looks for NUL bytes in the first 8KB

package tools

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

const binaryCheckBytes = 8192

// ErrBinary means a file holds non-text data.
var ErrBinary = errors.New("binary file")

// Read returns the full contents of a file inside the workspace.
func (w *Workspace) Read(path string) (string, error) {
	if err := w.checkSource(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", w.Rel(path), err)
	}
	if isBinary(data) {
		return "", fmt.Errorf("%s (%s): %w", w.Rel(path), HumanSize(int64(len(data))), ErrBinary)
	}
	return string(data), nil
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), binaryCheckBytes)], 0) >= 0
}
