package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusBarID    = "nerd-stats-status-bar-item"
	loadingText    = "Loading..."
	segmentWidthPx = 100
	cellWidthPx    = 8
)

// StatusBar owns the single text element shown in the bar. Until it is
// mounted every call is a no-op.
type StatusBar struct {
	id         string
	mounted    bool
	text       string
	minWidthPx int
}

func NewStatusBar(id string) *StatusBar {
	return &StatusBar{id: id}
}

func (b *StatusBar) ID() string { return b.id }

func (b *StatusBar) Mounted() bool { return b.mounted }

func (b *StatusBar) Mount() {
	b.mounted = true
	b.text = loadingText
}

// Render replaces the text verbatim.
func (b *StatusBar) Render(text string) {
	if !b.mounted {
		return
	}
	b.text = text
}

// ResizeToFit sets the minimum width for the given number of shown metrics.
func (b *StatusBar) ResizeToFit(enabled int) {
	if !b.mounted {
		return
	}
	b.minWidthPx = enabled * segmentWidthPx
}

func (b *StatusBar) Text() string { return b.text }

// MinWidth is in pixels.
func (b *StatusBar) MinWidth() int { return b.minWidthPx }

// MinCells converts MinWidth to terminal cells, rounding up.
func (b *StatusBar) MinCells() int {
	return (b.minWidthPx + cellWidthPx - 1) / cellWidthPx
}

func (b *StatusBar) View() string {
	if !b.mounted {
		return ""
	}
	text := b.text
	if pad := b.MinCells() - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return statusStyle.Render(text)
}
