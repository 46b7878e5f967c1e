package main

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// App wires the components together and owns their lifecycle.
type App struct {
	cfg    HostConfig
	log    zerolog.Logger
	store  *SettingsStore
	source MetricsSource
	clock  clock.Clock
	opts   []tea.ProgramOption

	settings *Settings
	bar      *StatusBar
	sched    *Scheduler
	program  *tea.Program
	cancel   context.CancelFunc
}

func NewApp(cfg HostConfig, log zerolog.Logger, opts ...tea.ProgramOption) *App {
	return &App{
		cfg:    cfg,
		log:    log,
		store:  NewSettingsStore(NewFileStore(cfg.DataDir), log),
		source: newSystemSource(cfg.CPUInterval, log),
		clock:  clock.NewClock(),
		opts:   opts,
	}
}

// Start loads settings, mounts the status bar, builds the program and starts
// the scheduler. The first render is requested by the model's Init.
func (a *App) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)

	settings := a.store.Load()
	a.settings = &settings

	a.bar = NewStatusBar(statusBarID)
	a.bar.Mount()

	a.sched = NewScheduler(a.clock, settings.Interval(), a.tick)

	m := newModel(ctx, modelDeps{
		settings: a.settings,
		store:    a.store,
		format:   NewDisplayFormatter(a.source),
		bar:      a.bar,
		sched:    a.sched,
		log:      a.log,
	})
	a.program = tea.NewProgram(m, a.opts...)

	a.sched.Start(ctx)
	a.log.Info().
		Interface("settings", settings).
		Dur("interval", settings.Interval()).
		Msg("started")
}

// Stop halts the scheduler and cancels in-flight reads. Safe to call more
// than once.
func (a *App) Stop() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.log.Info().Msg("stopped")
}

func (a *App) tick(t time.Time) {
	a.program.Send(tickMsg(t))
}

// Run blocks until the program quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.Start(ctx)
	defer a.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		_, err := a.program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		a.program.Quit()
		return nil
	})
	return g.Wait()
}
