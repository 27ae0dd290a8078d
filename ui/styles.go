package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	dimStyle      = lipgloss.NewStyle().Foreground(colorGray)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
	errStyle      = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	freeStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	doneStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)
