package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#D7BAFF")
	surface = lipgloss.Color("#16121B")
	text    = lipgloss.Color("#E9DFEE")
	textDim = lipgloss.Color("8")
	pink    = lipgloss.Color("5")
	green   = lipgloss.Color("2")

	statusStyle = lipgloss.NewStyle().
			Foreground(pink).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1).
			Foreground(text)

	panelTitleStyle = lipgloss.NewStyle().
			Background(primary).
			Foreground(surface).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	fieldNameStyle = lipgloss.NewStyle().
			Foreground(text)

	fieldActiveStyle = fieldNameStyle.
				Foreground(primary).
				Bold(true)

	fieldDescStyle = lipgloss.NewStyle().
			Foreground(textDim).
			PaddingLeft(2)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(textDim)
)
