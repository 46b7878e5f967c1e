package main

import (
	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	bar := m.bar.View()
	if m.width > 0 {
		bar = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bar)
	}

	if !m.showSettings {
		return lipgloss.JoinVertical(lipgloss.Left, bar, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.panel.View(),
		m.help.View(m.panel.keys),
		bar,
	)
}
