// ABOUTME: Lipgloss styles for terminal output, bridged into the handlers' Styles
// ABOUTME: With colour off every style is the identity, keeping output byte-stable

package interactive

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/scriptterm/internal/commands"
	"github.com/muesli/termenv"
)

// palette maps output roles to styles. The zero value paints nothing.
type palette struct {
	styles map[string]lipgloss.Style
}

func newPalette(out io.Writer, color bool) palette {
	if !color {
		return palette{}
	}
	r := lipgloss.NewRenderer(out)
	// Colour was requested explicitly or out is a terminal.
	r.SetColorProfile(termenv.ANSI256)
	return palette{styles: map[string]lipgloss.Style{
		"heading":  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		"info":     r.NewStyle().Foreground(lipgloss.Color("6")),
		"success":  r.NewStyle().Foreground(lipgloss.Color("2")),
		"warn":     r.NewStyle().Foreground(lipgloss.Color("3")),
		"error":    r.NewStyle().Foreground(lipgloss.Color("1")),
		"dim":      r.NewStyle().Faint(true),
		"prompt":   r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		"accent":   r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		"selected": r.NewStyle().Bold(true).Reverse(true),
	}}
}

func (p palette) enabled() bool { return p.styles != nil }

// paint renders s in the style of role; unknown roles and a disabled
// palette return s unchanged.
func (p palette) paint(role, s string) string {
	st, ok := p.styles[role]
	if !ok {
		return s
	}
	return st.Render(s)
}

func (p palette) fn(role string) func(string) string {
	if !p.enabled() {
		return nil
	}
	return func(s string) string { return p.paint(role, s) }
}

// handlerStyles bridges the palette into the handlers' Styles.
func (p palette) handlerStyles() commands.Styles {
	return commands.Styles{
		Heading: p.fn("heading"),
		Info:    p.fn("info"),
		Success: p.fn("success"),
		Warn:    p.fn("warn"),
		Error:   p.fn("error"),
		Dim:     p.fn("dim"),
	}
}
