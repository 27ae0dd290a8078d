package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zolyn/Artixide/config"
)

// localeName renders a locale for display. Languages taken from locale.gen
// often already carry their encoding suffix; only bare ones get it appended.
func localeName(l config.LocaleConfig) string {
	name := l.Lang
	if l.Encoding != "" && !strings.Contains(name, ".") {
		name += "." + l.Encoding
	}
	if l.Modifier != "" && !strings.Contains(name, "@") {
		name += "@" + l.Modifier
	}
	return name
}

func (m Model) handleLocale(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := &m.localeMenu
	if m.pickEncoding {
		active = &m.encodingMenu
	}

	if !active.filtering && (msg.String() == "q" || msg.String() == "esc") {
		if m.pickEncoding {
			m.pickEncoding = false
		} else {
			m.page = PageMenu
		}
		return m, nil
	}

	choice, _ := active.handleKey(msg)
	if choice < 0 {
		return m, nil
	}

	if m.pickEncoding {
		m.cfg.Locale.Encoding = m.encodings[choice]
		m.setStatus("Locale: " + localeName(m.cfg.Locale))
		m.pickEncoding = false
		m.page = PageMenu
	} else {
		m.cfg.Locale.Lang = m.langs[choice]
		m.pickEncoding = true
	}
	return m, nil
}

func (m Model) renderLocale() string {
	var sb strings.Builder

	if m.pickEncoding {
		sb.WriteString(titleStyle.Render("LOCALE: ENCODING"))
		sb.WriteString("  " + dimStyle.Render("language: "+m.cfg.Locale.Lang))
	} else {
		sb.WriteString(titleStyle.Render("LOCALE: LANGUAGE"))
		sb.WriteString("  " + dimStyle.Render("current: "+localeName(m.cfg.Locale)))
	}
	sb.WriteString("\n\n")

	if m.loadErr != "" {
		sb.WriteString(errStyle.Render("  " + m.loadErr))
		return sb.String()
	}
	if m.langs == nil {
		sb.WriteString(dimStyle.Render("  Loading locales..."))
		return sb.String()
	}

	if m.pickEncoding {
		sb.WriteString(m.encodingMenu.render(m.height - 6))
	} else {
		sb.WriteString(m.localeMenu.render(m.height - 6))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · / filter · enter select · esc back"))
	return sb.String()
}
