package ui

import "strings"

func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("ARTIXIDE INSTALLER"))
	sb.WriteString("\n\n")

	sb.WriteString(m.menu.render(m.height - 6))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · enter select · q quit"))
	return sb.String()
}
