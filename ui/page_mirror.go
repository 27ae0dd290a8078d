package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zolyn/Artixide/collector"
)

// buildMirrorRows flattens the grouped mirrorlist into menu rows: one
// header row per group, then its servers (shown by host).
func (m *Model) buildMirrorRows() {
	var rows []string
	var refs []mirrorRef

	for gi, group := range m.mirrors {
		rows = append(rows, strings.TrimPrefix(group.Name, "# "))
		refs = append(refs, mirrorRef{group: gi, server: -1})
		for si, server := range group.Servers {
			rows = append(rows, "  "+collector.MirrorHost(server))
			refs = append(refs, mirrorRef{group: gi, server: si})
		}
	}

	m.mirrorMenu.setItems(rows)
	m.mirrorIdx = refs
}

func (m Model) handleMirror(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.mirrorMenu.filtering && (msg.String() == "q" || msg.String() == "esc") {
		m.page = PageMenu
		return m, nil
	}
	choice, _ := m.mirrorMenu.handleKey(msg)
	if choice < 0 {
		return m, nil
	}

	ref := m.mirrorIdx[choice]
	if ref.server < 0 {
		// Group headers are not selectable.
		return m, nil
	}
	server := m.mirrors[ref.group].Servers[ref.server]
	m.cfg.Mirror = collector.MirrorHost(server)
	m.setStatus("Mirror: " + m.cfg.Mirror)
	m.page = PageMenu
	return m, nil
}

func (m Model) renderMirror() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("MIRROR"))
	if m.cfg.Mirror != "" {
		sb.WriteString("  " + dimStyle.Render("current: "+m.cfg.Mirror))
	}
	sb.WriteString("\n\n")

	if m.loadErr != "" {
		sb.WriteString(errStyle.Render("  " + m.loadErr))
		return sb.String()
	}
	if m.mirrors == nil {
		sb.WriteString(dimStyle.Render("  Loading mirrorlist..."))
		return sb.String()
	}

	sb.WriteString(m.mirrorMenu.render(m.height - 6))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · / filter · enter select · esc back"))
	return sb.String()
}
