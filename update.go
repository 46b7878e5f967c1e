package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type renderMsg struct {
	text string
}

type sampleErrMsg struct {
	err error
}

// sampleCmd formats a copy of the settings so the read can run off the
// Update loop.
func sampleCmd(ctx context.Context, f *DisplayFormatter, s Settings) tea.Cmd {
	return func() tea.Msg {
		text, err := f.Format(ctx, s)
		if err != nil {
			return sampleErrMsg{err: err}
		}
		return renderMsg{text: text}
	}
}

func (m model) sample() tea.Cmd {
	return sampleCmd(m.ctx, m.format, *m.settings)
}

func (m model) Init() tea.Cmd {
	return m.sample()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		return m, m.sample()

	case renderMsg:
		m.bar.Render(msg.text)

	case sampleErrMsg:
		// the previous text stays until a later cycle succeeds
		m.log.Error().Err(msg.err).Msg("metrics read failed")

	case settingChangedMsg:
		return m.applySetting(msg)

	default:
		if m.showSettings {
			var cmd tea.Cmd
			m.panel, cmd = m.panel.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showSettings {
		if key.Matches(msg, m.panel.keys.Close) {
			m.showSettings = false
			m.panel.Close()
			return m, nil
		}
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Settings):
		m.showSettings = true
		cmd := m.panel.Open()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// applySetting persists the change and renders once. Only display toggles
// change the bar width; only the refresh rate changes the cadence.
func (m model) applySetting(msg settingChangedMsg) (tea.Model, tea.Cmd) {
	if err := m.store.Save(*m.settings); err != nil {
		m.log.Error().Err(err).Str("field", msg.key).Msg("could not save settings")
	}

	switch msg.kind {
	case toggleField:
		m.bar.ResizeToFit(m.settings.EnabledCount())
	case numberField:
		m.sched.Reset(m.settings.Interval())
	}

	m.log.Debug().Str("field", msg.key).Interface("settings", *m.settings).Msg("setting changed")
	return m, m.sample()
}
