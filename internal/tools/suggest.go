// ABOUTME: "Did you mean" suggestions for names that failed to resolve
// ABOUTME: Ranks every listable file name with fuzzy matching

package tools

import (
	"path/filepath"
	"strings"

	"github.com/mauromedda/scriptterm/pkg/tui/fuzzy"
)

const maxSuggestions = 3

// Suggest returns up to three existing file names resembling name.
func (w *Workspace) Suggest(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return fuzzy.Top(stem, w.Names(), maxSuggestions)
}
