package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// menuList is a scrollable, filterable selection list. Typing '/' starts a
// filter; matching is case-insensitive substring.
type menuList struct {
	items     []string
	cursor    int
	filter    string
	filtering bool
	matches   []int // indices into items when filter is non-empty
}

func newMenuList(items []string) menuList {
	return menuList{items: items}
}

func (m *menuList) setItems(items []string) {
	m.items = items
	m.cursor = 0
	m.filter = ""
	m.filtering = false
	m.matches = nil
}

// visible returns the indices currently shown.
func (m *menuList) visible() []int {
	if m.filter == "" {
		idx := make([]int, len(m.items))
		for i := range m.items {
			idx[i] = i
		}
		return idx
	}
	return m.matches
}

func (m *menuList) refilter() {
	m.matches = m.matches[:0]
	needle := strings.ToLower(m.filter)
	for i, item := range m.items {
		if strings.Contains(strings.ToLower(item), needle) {
			m.matches = append(m.matches, i)
		}
	}
	if m.cursor >= len(m.matches) {
		m.cursor = 0
	}
}

// selected returns the selected item index, or -1 when nothing is visible.
func (m *menuList) selected() int {
	vis := m.visible()
	if len(vis) == 0 || m.cursor >= len(vis) {
		return -1
	}
	return vis[m.cursor]
}

// handleKey processes navigation and filter keys. It returns the chosen
// item index on enter (or -1) and whether the key was consumed.
func (m *menuList) handleKey(msg tea.KeyMsg) (choice int, handled bool) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
		case "backspace":
			if m.filter != "" {
				m.filter = m.filter[:len(m.filter)-1]
				m.refilter()
			}
		default:
			if len(msg.Runes) > 0 {
				m.filter += string(msg.Runes)
				m.refilter()
			}
		}
		return -1, true
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return -1, true
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return -1, true
	case "g":
		m.cursor = 0
		return -1, true
	case "G":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
		return -1, true
	case "/":
		m.filtering = true
		m.filter = ""
		m.refilter()
		return -1, true
	case "enter":
		return m.selected(), true
	}
	return -1, false
}

// render draws the list inside the given height, keeping the cursor in view.
func (m *menuList) render(height int) string {
	var sb strings.Builder

	vis := m.visible()
	if m.filter != "" || m.filtering {
		sb.WriteString(dimStyle.Render("  /"+m.filter) + "\n")
		height--
	}

	if len(vis) == 0 {
		sb.WriteString(dimStyle.Render("  (no matches)"))
		return sb.String()
	}

	top := 0
	if m.cursor >= height {
		top = m.cursor - height + 1
	}
	for row := top; row < len(vis) && row < top+height; row++ {
		item := m.items[vis[row]]
		if row == m.cursor {
			sb.WriteString(selectedStyle.Render("> "+item) + "\n")
		} else {
			sb.WriteString("  " + item + "\n")
		}
	}
	return sb.String()
}

// textInput is a single-line editor with a cursor at the end.
type textInput struct {
	value string
}

// handleKey edits the value. It returns true on enter.
func (t *textInput) handleKey(msg tea.KeyMsg) (submitted bool) {
	switch msg.String() {
	case "enter":
		return true
	case "backspace":
		if t.value != "" {
			runes := []rune(t.value)
			t.value = string(runes[:len(runes)-1])
		}
	default:
		if len(msg.Runes) > 0 {
			t.value += string(msg.Runes)
		}
	}
	return false
}

func (t *textInput) render() string {
	return valueStyle.Render(t.value) + warnStyle.Render("█")
}
