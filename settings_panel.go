package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

var errNoNumericPrefix = errors.New("no leading integer")

type fieldKind int

const (
	toggleField fieldKind = iota
	numberField
)

// settingField binds one form control to one Settings field.
type settingField struct {
	key  string
	name string
	desc string
	kind fieldKind

	getBool func(*Settings) bool
	setBool func(*Settings, bool)
	getInt  func(*Settings) int
	setInt  func(*Settings, int)
}

func settingFields() []settingField {
	return []settingField{
		{
			key:     "CPUView",
			name:    "CPU Usage",
			desc:    "Adds the CPU usage to the status bar",
			kind:    toggleField,
			getBool: func(s *Settings) bool { return s.CPUView },
			setBool: func(s *Settings, v bool) { s.CPUView = v },
		},
		{
			key:     "MemUsedView",
			name:    "Memory Used Percentage",
			desc:    "Adds the memory used percentage to the status bar",
			kind:    toggleField,
			getBool: func(s *Settings) bool { return s.MemUsedView },
			setBool: func(s *Settings, v bool) { s.MemUsedView = v },
		},
		{
			key:     "MemfreeView",
			name:    "Memory Free",
			desc:    "Adds the memory free to the status bar",
			kind:    toggleField,
			getBool: func(s *Settings) bool { return s.MemfreeView },
			setBool: func(s *Settings, v bool) { s.MemfreeView = v },
		},
		{
			key:    "RefreshRate",
			name:   "Refresh Time (ms)",
			desc:   fmt.Sprintf("How often the status bar updates in milliseconds. Minimum: %d", minRefreshRate.Milliseconds()),
			kind:   numberField,
			getInt: func(s *Settings) int { return s.RefreshRate },
			setInt: func(s *Settings, v int) { s.RefreshRate = v },
		},
	}
}

// settingChangedMsg is emitted after a field was written into Settings.
type settingChangedMsg struct {
	key  string
	kind fieldKind
}

func changed(f settingField) tea.Cmd {
	return func() tea.Msg {
		return settingChangedMsg{key: f.key, kind: f.kind}
	}
}

// settingsPanel edits Settings in place. Every change is applied as soon as
// it happens; there is no separate commit step.
type settingsPanel struct {
	settings *Settings
	fields   []settingField
	cursor   int
	input    textinput.Model
	keys     panelKeyMap
	log      zerolog.Logger
}

func newSettingsPanel(settings *Settings, log zerolog.Logger) settingsPanel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 9
	input.Width = 10
	input.Placeholder = strconv.Itoa(DefaultSettings().RefreshRate)
	input.Cursor.SetMode(cursor.CursorStatic)

	return settingsPanel{
		settings: settings,
		fields:   settingFields(),
		input:    input,
		keys:     defaultPanelKeyMap(),
		log:      log,
	}
}

// Open syncs the controls with the current settings.
func (p *settingsPanel) Open() tea.Cmd {
	for _, f := range p.fields {
		if f.kind == numberField {
			p.input.SetValue(strconv.Itoa(f.getInt(p.settings)))
		}
	}
	return p.focusCurrent()
}

func (p *settingsPanel) Close() {
	p.input.Blur()
}

func (p settingsPanel) current() settingField {
	return p.fields[p.cursor]
}

func (p *settingsPanel) move(delta int) tea.Cmd {
	n := len(p.fields)
	p.cursor = (p.cursor + delta + n) % n
	return p.focusCurrent()
}

func (p *settingsPanel) focusCurrent() tea.Cmd {
	if p.current().kind == numberField {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

func (p settingsPanel) Update(msg tea.Msg) (settingsPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	field := p.current()
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		cmd := p.move(-1)
		return p, cmd
	case key.Matches(keyMsg, p.keys.Down):
		cmd := p.move(1)
		return p, cmd
	case field.kind == toggleField && key.Matches(keyMsg, p.keys.Toggle):
		field.setBool(p.settings, !field.getBool(p.settings))
		return p, changed(field)
	}

	if field.kind != numberField {
		return p, nil
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(keyMsg)
	if p.input.Value() == before {
		return p, cmd
	}
	return p, tea.Batch(cmd, p.applyNumber(field))
}

// applyNumber stores the leading integer of the input. Input without one is
// logged and dropped so the previous value stays in effect.
func (p settingsPanel) applyNumber(field settingField) tea.Cmd {
	value := p.input.Value()
	n, err := parseLeadingInt(value)
	if err != nil {
		p.log.Warn().Err(err).Str("field", field.key).Str("value", value).Msg("couldn't parse value")
		return nil
	}
	field.setInt(p.settings, n)
	return changed(field)
}

func (p settingsPanel) View() string {
	var rows []string
	rows = append(rows, panelTitleStyle.Render("Settings"))

	for i, f := range p.fields {
		nameStyle := fieldNameStyle
		marker := "  "
		if i == p.cursor {
			nameStyle = fieldActiveStyle
			marker = "› "
		}

		var control string
		switch f.kind {
		case toggleField:
			if f.getBool(p.settings) {
				control = toggleOnStyle.Render("[x]")
			} else {
				control = toggleOffStyle.Render("[ ]")
			}
		case numberField:
			control = "[" + p.input.View() + "]"
		}

		rows = append(rows,
			marker+control+" "+nameStyle.Render(f.name),
			fieldDescStyle.Render(f.desc),
		)
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// parseLeadingInt reads an optionally signed integer from the start of s,
// after leading whitespace, and ignores whatever follows it.
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, errNoNumericPrefix
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s[:end], err)
	}
	return n, nil
}
