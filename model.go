package main

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/rs/zerolog"
)

// model is only mutated from bubbletea's Update loop, which is the single
// context that touches Settings and the status bar.
type model struct {
	ctx      context.Context
	settings *Settings
	store    *SettingsStore
	format   *DisplayFormatter
	bar      *StatusBar
	sched    *Scheduler
	log      zerolog.Logger

	panel        settingsPanel
	showSettings bool

	keys keyMap
	help help.Model

	width  int
	height int
}

type modelDeps struct {
	settings *Settings
	store    *SettingsStore
	format   *DisplayFormatter
	bar      *StatusBar
	sched    *Scheduler
	log      zerolog.Logger
}

func newModel(ctx context.Context, deps modelDeps) model {
	return model{
		ctx:      ctx,
		settings: deps.settings,
		store:    deps.store,
		format:   deps.format,
		bar:      deps.bar,
		sched:    deps.sched,
		log:      deps.log,
		panel:    newSettingsPanel(deps.settings, deps.log),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}
