package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type testEnv struct {
	model    model
	settings *Settings
	store    *FileStore
	sched    *Scheduler
}

func newTestEnv(t *testing.T, src MetricsSource) *testEnv {
	t.Helper()

	settings := DefaultSettings()
	fileStore := NewFileStore(t.TempDir())
	bar := NewStatusBar(statusBarID)
	bar.Mount()
	sched := NewScheduler(fakeclock.NewFakeClock(time.Unix(0, 0)), settings.Interval(), func(time.Time) {})

	m := newModel(context.Background(), modelDeps{
		settings: &settings,
		store:    NewSettingsStore(fileStore, zerolog.Nop()),
		format:   NewDisplayFormatter(src),
		bar:      bar,
		sched:    sched,
		log:      zerolog.Nop(),
	})
	return &testEnv{model: m, settings: &settings, store: fileStore, sched: sched}
}

// send feeds msg to the model and returns the messages its command produced.
func (e *testEnv) send(msg tea.Msg) []tea.Msg {
	next, cmd := e.model.Update(msg)
	e.model = next.(model)
	return collect(cmd)
}

// drain feeds msg and every message that follows from it back into the model.
func (e *testEnv) drain(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if _, ok := head.(tea.QuitMsg); ok {
			continue
		}
		queue = append(queue, e.send(head)...)
	}
}

var testSource = fixedSource{cpu: 42, mem: MemInfo{FreePercent: 30, FreeMb: 2048}}

func TestModel_InitRenders(t *testing.T) {
	env := newTestEnv(t, testSource)
	assert.Equal(t, env.model.bar.Text(), loadingText)

	msgs := collect(env.model.Init())
	assert.Assert(t, is.Len(msgs, 1))
	assert.Equal(t, msgs[0], tea.Msg(renderMsg{text: "CPU: 42% Memory: 70% used"}))

	env.send(msgs[0])
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used")
}

func TestModel_TickSamples(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.drain(tickMsg(time.Now()))
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used")
}

type flakySource struct {
	fixedSource
	fail bool
}

func (f *flakySource) CPUUsage(ctx context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("sensor gone")
	}
	return f.fixedSource.CPUUsage(ctx)
}

func TestModel_FailedReadKeepsPreviousText(t *testing.T) {
	src := &flakySource{fixedSource: testSource}
	env := newTestEnv(t, src)

	env.drain(tickMsg(time.Now()))
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used")

	src.fail = true
	msgs := env.send(tickMsg(time.Now()))
	assert.Assert(t, is.Len(msgs, 1))
	errMsg, ok := msgs[0].(sampleErrMsg)
	assert.Assert(t, ok)
	assert.ErrorContains(t, errMsg.err, "sensor gone")

	env.send(errMsg)
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used")

	// a later cycle recovers
	src.fail = false
	env.drain(tickMsg(time.Now()))
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used")
}

func TestModel_OverlappingRendersLastWriteWins(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.send(renderMsg{text: "first"})
	env.send(renderMsg{text: "second"})
	assert.Equal(t, env.model.bar.Text(), "second")
}

func TestModel_ToggleChangePersistsAndResizes(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.settings.MemfreeView = true

	env.drain(settingChangedMsg{key: "MemfreeView", kind: toggleField})

	assert.Equal(t, env.model.bar.MinWidth(), 300)
	assert.Equal(t, env.model.bar.Text(), "CPU: 42% Memory: 70% used (2048Mb free)")

	saved := NewSettingsStore(env.store, zerolog.Nop()).Load()
	assert.DeepEqual(t, saved, *env.settings)
}

func TestModel_RefreshChangeResetsScheduler(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.settings.RefreshRate = 2000

	env.drain(settingChangedMsg{key: "RefreshRate", kind: numberField})

	assert.Equal(t, env.sched.Interval(), 2*time.Second)
	assert.Equal(t, env.model.bar.MinWidth(), 0)

	data, err := os.ReadFile(env.store.Path())
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"RefreshRate": 2000`))
}

func TestModel_SaveFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.model.store = NewSettingsStore(failingStore{err: errors.New("read-only fs")}, zerolog.Nop())
	env.settings.CPUView = false

	env.drain(settingChangedMsg{key: "CPUView", kind: toggleField})
	assert.Equal(t, env.model.bar.MinWidth(), 100)
	assert.Equal(t, env.model.bar.Text(), " Memory: 70% used")
}

func TestModel_SettingsPanelFlow(t *testing.T) {
	env := newTestEnv(t, testSource)

	env.drain(typeText("s"))
	assert.Check(t, env.model.showSettings)
	assert.Check(t, is.Contains(env.model.View(), "Refresh Time (ms)"))

	// toggle CPU off through the panel
	env.drain(keySpace)
	assert.Check(t, !env.settings.CPUView)
	assert.Equal(t, env.model.bar.MinWidth(), 100)
	assert.Equal(t, env.model.bar.Text(), " Memory: 70% used")

	// "q" is text while the panel is open
	assert.Check(t, is.Len(env.send(typeText("q")), 0))
	assert.Check(t, env.model.showSettings)

	env.drain(keyEsc)
	assert.Check(t, !env.model.showSettings)
	assert.Check(t, !strings.Contains(env.model.View(), "Refresh Time (ms)"))

	saved := NewSettingsStore(env.store, zerolog.Nop()).Load()
	assert.Check(t, !saved.CPUView)
}

func TestModel_BadRefreshInputThenToggleStillSaves(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.drain(typeText("s"))
	env.drain(keyUp)
	env.model.panel.input.SetValue("")

	env.drain(typeText("soon"))
	assert.Equal(t, env.settings.RefreshRate, 1000)
	_, err := os.Stat(env.store.Path())
	assert.Check(t, os.IsNotExist(err))

	env.drain(keyUp)
	env.drain(keySpace)
	saved := NewSettingsStore(env.store, zerolog.Nop()).Load()
	assert.Check(t, saved.MemfreeView)
	assert.Equal(t, saved.RefreshRate, 1000)
}

func TestModel_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		open bool
		key  tea.KeyMsg
		quit bool
	}{
		{name: "q", key: typeText("q"), quit: true},
		{name: "ctrl+c", key: tea.KeyMsg{Type: tea.KeyCtrlC}, quit: true},
		{name: "ctrl+c in panel", open: true, key: tea.KeyMsg{Type: tea.KeyCtrlC}, quit: true},
		{name: "x", key: typeText("x"), quit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testSource)
			if tt.open {
				env.drain(typeText("s"))
			}
			quit := false
			for _, msg := range env.send(tt.key) {
				if _, ok := msg.(tea.QuitMsg); ok {
					quit = true
				}
			}
			assert.Equal(t, quit, tt.quit)
		})
	}
}

func TestModel_ViewShowsBar(t *testing.T) {
	env := newTestEnv(t, testSource)
	env.send(tea.WindowSizeMsg{Width: 80, Height: 3})
	env.send(renderMsg{text: "CPU: 1%"})

	view := env.model.View()
	assert.Check(t, is.Contains(view, "CPU: 1%"))
	assert.Check(t, is.Contains(view, "settings"))
}
