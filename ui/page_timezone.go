package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTimezone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.zoneMenu.filtering && (msg.String() == "q" || msg.String() == "esc") {
		m.page = PageMenu
		return m, nil
	}
	choice, _ := m.zoneMenu.handleKey(msg)
	if choice >= 0 {
		m.cfg.Timezone = m.zones[choice]
		m.setStatus("Timezone: " + m.cfg.Timezone)
		m.page = PageMenu
	}
	return m, nil
}

func (m Model) renderTimezone() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("TIMEZONE"))
	if m.cfg.Timezone != "" {
		sb.WriteString("  " + dimStyle.Render("current: "+m.cfg.Timezone))
	}
	sb.WriteString("\n\n")

	if m.loadErr != "" {
		sb.WriteString(errStyle.Render("  " + m.loadErr))
		return sb.String()
	}
	if m.zones == nil {
		sb.WriteString(dimStyle.Render("  Loading timezones..."))
		return sb.String()
	}

	sb.WriteString(m.zoneMenu.render(m.height - 6))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · / filter · enter select · esc back"))
	return sb.String()
}
