// ABOUTME: Tests for per-category summaries of python, shell, markdown and plain text files
// ABOUTME: Checks definition counts, imports, shell options, headings and generic counts

package tools

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t, map[string]string{
		"python_scripts/tool.py": `#!/usr/bin/env python3
"""Collects metrics."""
import os, sys
from pathlib import Path
import json as j

class Collector:
    def run(self):
        pass

def main():
    pass

async def fetch():
    pass
`,
		"shell_scripts/deploy.sh": `#!/bin/bash
# Deploys the site.
# Requires rsync.

set -euo pipefail
rsync -a . remote:
`,
		"docs/guide.md":        "# Guide\n\n## Install\n```\n# not a heading\n```\n### Details\n",
		"text_files/notes.txt": "one two\nthree\n",
	})
	root := w.Root()

	py, err := w.Summarize(filepath.Join(root, "python_scripts", "tool.py"))
	if err != nil {
		t.Fatal(err)
	}
	if py.Kind != "python" || py.Functions != 2 || py.Classes != 1 {
		t.Errorf("python summary = %+v", py)
	}
	if want := []string{"os", "sys", "pathlib", "json"}; !slices.Equal(py.Imports, want) {
		t.Errorf("imports = %q; want %q", py.Imports, want)
	}
	if py.Description != "Collects metrics." {
		t.Errorf("docstring = %q", py.Description)
	}

	sh, err := w.Summarize(filepath.Join(root, "shell_scripts", "deploy.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if sh.Description != "Deploys the site. Requires rsync." {
		t.Errorf("shell description = %q", sh.Description)
	}
	if len(sh.Options) != 3 {
		t.Errorf("shell options = %q; want -e, -u and pipefail", sh.Options)
	}

	md, err := w.Summarize(filepath.Join(root, "docs", "guide.md"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Guide", "  Install", "    Details"}; !slices.Equal(md.Headings, want) {
		t.Errorf("headings = %q; want %q", md.Headings, want)
	}

	txt, err := w.Summarize(filepath.Join(root, "text_files", "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if txt.Kind != "text" || txt.Lines != 2 || txt.Words != 3 || txt.Chars != 14 {
		t.Errorf("text summary = %+v", txt)
	}
}
