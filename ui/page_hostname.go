package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleHostname(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.page = PageMenu
		return m, nil
	}
	if m.hostInput.handleKey(msg) {
		value := strings.TrimSpace(m.hostInput.value)
		if value != "" {
			m.cfg.Hostname = value
			m.setStatus("Hostname: " + value)
		}
		m.page = PageMenu
	}
	return m, nil
}

func (m Model) renderHostname() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("HOSTNAME"))
	sb.WriteString("\n\n")
	sb.WriteString("  " + m.hostInput.render())
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("enter confirm · esc back"))
	return sb.String()
}
