// ABOUTME: Markdown renderer wrapper around glamour for help and chat output
// ABOUTME: Caches rendered results keyed by content hash and width

package interactive

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a colour terminal.
type MarkdownRenderer struct {
	width int
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a renderer wrapping at width columns. An empty
// style picks one from the terminal background.
func NewMarkdownRenderer(width int, style string) *MarkdownRenderer {
	return &MarkdownRenderer{width: width, style: style, cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of md, or md itself when
// glamour fails.
func (r *MarkdownRenderer) Render(md string) string {
	if md == "" {
		return ""
	}
	key := cacheKey(md, r.width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	styleOpt := glamour.WithAutoStyle()
	if r.style != "" {
		styleOpt = glamour.WithStandardStyle(r.style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(r.width))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ") + "\n"
	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
