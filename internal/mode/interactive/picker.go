// ABOUTME: Bubble Tea picker: a filterable list the user chooses one document from
// ABOUTME: Typing filters with fuzzy matching; enter chooses, esc or ctrl+c cancels

package interactive

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/scriptterm/pkg/tui/fuzzy"
	"github.com/mauromedda/scriptterm/pkg/tui/width"
)

const pickerMaxRows = 12

// pickerModel implements tea.Model with value semantics.
type pickerModel struct {
	title     string
	items     []string
	visible   []int // indexes into items
	filter    string
	selected  int
	scrollOff int
	width     int
	chosen    string
	cancelled bool
	styles    palette
}

func newPickerModel(title string, items []string, styles palette) pickerModel {
	m := pickerModel{title: title, items: items, styles: styles}
	m.applyFilter()
	return m
}

// Init returns nil; the picker needs no startup command.
func (m pickerModel) Init() tea.Cmd { return nil }

// Update handles key and window-size messages.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp, tea.KeyCtrlP:
			m.move(-1)
		case tea.KeyDown, tea.KeyCtrlN:
			m.move(1)
		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			m.chosen = m.items[m.visible[m.selected]]
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.filter != "" {
				r := []rune(m.filter)
				m.filter = string(r[:len(r)-1])
				m.applyFilter()
			}
		case tea.KeyRunes, tea.KeySpace:
			m.filter += string(msg.Runes)
			m.applyFilter()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the title, the filter and the visible rows.
func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.paint("heading", m.title) + "\n")
	if m.filter != "" {
		b.WriteString(m.styles.paint("dim", "filter: "+m.filter) + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString("  (no matches)\n")
	}
	end := min(m.scrollOff+pickerMaxRows, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		line := prefix + m.items[m.visible[i]]
		if m.width > 0 {
			line = width.Truncate(line, m.width)
		}
		if i == m.selected {
			line = m.styles.paint("selected", line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(m.styles.paint("dim", "enter: choose  esc: cancel"))
	return b.String()
}

func (m *pickerModel) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.visible) {
		return
	}
	m.selected = next
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+pickerMaxRows {
		m.scrollOff = m.selected - pickerMaxRows + 1
	}
}

func (m *pickerModel) applyFilter() {
	m.selected, m.scrollOff = 0, 0
	m.visible = nil
	if m.filter == "" {
		for i := range m.items {
			m.visible = append(m.visible, i)
		}
		return
	}
	for _, match := range fuzzy.Find(m.filter, m.items) {
		m.visible = append(m.visible, match.Index)
	}
}

// runPicker shows the picker on in/out and returns the chosen item.
func runPicker(title string, items []string, in io.Reader, out io.Writer, styles palette) (string, bool, error) {
	p := tea.NewProgram(newPickerModel(title, items, styles), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("running picker: %w", err)
	}
	m, ok := final.(pickerModel)
	if !ok || m.cancelled || m.chosen == "" {
		return "", false, nil
	}
	return m.chosen, true, nil
}
