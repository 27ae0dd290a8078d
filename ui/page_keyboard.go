package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.keyboardMenu.filtering && (msg.String() == "q" || msg.String() == "esc") {
		m.page = PageMenu
		return m, nil
	}
	choice, _ := m.keyboardMenu.handleKey(msg)
	if choice >= 0 {
		m.cfg.KeyboardLayout = m.layouts[choice]
		m.setStatus("Keyboard layout: " + m.cfg.KeyboardLayout)
		m.page = PageMenu
	}
	return m, nil
}

func (m Model) renderKeyboard() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("KEYBOARD LAYOUT"))
	sb.WriteString("  " + dimStyle.Render("current: "+m.cfg.KeyboardLayout))
	sb.WriteString("\n\n")

	if m.loadErr != "" {
		sb.WriteString(errStyle.Render("  " + m.loadErr))
		return sb.String()
	}
	if m.layouts == nil {
		sb.WriteString(dimStyle.Render("  Loading keymaps..."))
		return sb.String()
	}

	sb.WriteString(m.keyboardMenu.render(m.height - 6))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · / filter · enter select · esc back"))
	return sb.String()
}
