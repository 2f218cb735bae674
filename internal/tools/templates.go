// ABOUTME: Starter content for newly created files, one template per category
// ABOUTME: Shell scripts get an executable mode; everything else is plain 0644

package tools

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Template returns the starter content for a new file of category c.
func Template(c Category, fileName string) string {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	switch c.Name {
	case "python":
		return fmt.Sprintf(`#!/usr/bin/env python3
"""
%s: Description of the script.

This script does the following:
- Task 1
- Task 2
"""


def main():
    """Main function."""
    print("Hello, world!")


if __name__ == "__main__":
    main()
`, fileName)
	case "shell":
		return `#!/bin/bash

# Set error handling
set -e

# Description: This script does...

echo "Hello, world!"
`
	case "markdown":
		return fmt.Sprintf("# %s\n\n## Overview\n\nDescription of this document.\n\n## Details\n\nMore information here.\n", stem)
	default:
		return fmt.Sprintf("%s\n", stem)
	}
}

// templateMode returns the permission bits for a new file of category c.
func templateMode(c Category) fs.FileMode {
	if c.Interpreter != "" && c.Name == "shell" {
		return 0o755
	}
	return 0o644
}
