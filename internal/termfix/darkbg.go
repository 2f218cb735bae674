// ABOUTME: Fixes scriptterm's terminal appearance before bubbletea and glamour initialize
// ABOUTME: Declares the background up front and names the markdown style that matches it

package termfix

import "github.com/charmbracelet/lipgloss"

// MarkdownStyle is the glamour standard style used for help and result
// text. It must agree with the background declared by Declare.
const MarkdownStyle = "dark"

// Declare tells lipgloss the background is dark, so it never writes a
// background-colour query. The reply would arrive on stdin and reach the
// recognizer as a typed line.
func Declare() {
	lipgloss.SetHasDarkBackground(MarkdownStyle == "dark")
}

// Runs before any importer's init. Must not import bubbletea, directly or not.
func init() {
	Declare()
}
