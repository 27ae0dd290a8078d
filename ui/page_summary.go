package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zolyn/Artixide/model"
)

func (m Model) handleSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.page = PageMenu
		return m, nil
	case "w":
		return m, saveConfig(m.cfg)
	}
	return m, nil
}

func (m Model) renderSummary() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("SUMMARY"))
	sb.WriteString("\n\n")

	row := func(key, val string) {
		if val == "" {
			val = dimStyle.Render("(not set)")
		} else {
			val = valueStyle.Render(val)
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", styledPad(dimStyle.Render(key+":"), 18), val))
	}

	row("Keyboard", m.cfg.KeyboardLayout)
	row("Locale", localeName(m.cfg.Locale))
	row("Mirror", m.cfg.Mirror)
	row("Hostname", m.cfg.Hostname)
	row("Timezone", m.cfg.Timezone)

	staged := 0
	for i := range m.part.devices {
		dev := &m.part.devices[i]
		if !dev.Compatible() || dev.Compat.Journal.Len() == 0 {
			continue
		}
		if staged == 0 {
			sb.WriteString("\n")
			sb.WriteString(headerStyle.Render("  Staged partition changes (not written to disk)"))
			sb.WriteString("\n")
		}
		staged++
		path := dev.Compat.Disk.Path
		dev.Compat.Journal.Each(func(number uint16, mod model.Modification) {
			switch mod.Kind {
			case model.ModCreate:
				sb.WriteString(fmt.Sprintf("    %s%d  create  [%d, %d]\n", path, number, mod.Start, mod.End))
			case model.ModDelete:
				sb.WriteString(fmt.Sprintf("    %s%d  delete\n", path, number))
			}
		})
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("w save config · esc back"))
	return sb.String()
}
