// Package app hosts the application state machine. Every mutation of the
// project store, the edit buffer, the selection, and the validation state
// happens here, one message at a time; the view renders whatever state the
// last message left behind.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskman/internal/store"
	"taskman/internal/tui"
)

// DefaultAutosaveInterval is the sync period used when none is configured.
const DefaultAutosaveInterval = 15 * time.Second

// Context is the active top-level view mode.
type Context int

const (
	ContextProjectList Context = iota
	ContextNewProject
	ContextEditProject
)

// Options configures a Model.
type Options struct {
	// Backend is where the store is loaded from and persisted to.
	Backend store.Backend

	// Logger receives load/save outcomes. Nil means no logging.
	Logger *zap.Logger

	// AutosaveInterval overrides DefaultAutosaveInterval when positive.
	AutosaveInterval time.Duration
}

// readyState aggregates everything that exists only once the store has
// finished loading. All fields are always present; the transition table in
// update.go is the sole authority keeping them mutually consistent.
type readyState struct {
	store     *store.Store
	ctx       Context
	form      *editForm
	selection Selection
	cursor    int
}

// Model is the top-level application. It has exactly two shapes: not ready
// (ready == nil, only the load-completion message is accepted) and ready.
type Model struct {
	backend  store.Backend
	logger   *zap.Logger
	interval time.Duration

	spinner  spinner.Model
	help     help.Model
	listKeys listKeyMap
	formKeys formKeyMap
	width    int

	ready *readyState
}

// New creates a Model in the not-ready state.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := opts.AutosaveInterval
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = tui.FocusedStyle

	return Model{
		backend:  opts.Backend,
		logger:   logger,
		interval: interval,
		spinner:  sp,
		help:     help.New(),
		listKeys: newListKeyMap(),
		formKeys: newFormKeyMap(),
	}
}

// Init starts the background store load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// loadCmd performs the persistence read off the event loop. Its only visible
// effect is the later delivery of a single storeLoadedMsg.
func (m Model) loadCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		st, err := store.Load(backend)
		return storeLoadedMsg{store: st, err: err}
	}
}

// autosaveCmd arms the next periodic sync. It is re-armed on every firing
// and has no awareness of whether a previous write is still in flight.
func (m Model) autosaveCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

// saveCmd snapshots the store on the event-loop timeline, then hands the
// write to a goroutine. Overlapping writes carry no ordering guarantee; the
// last write to complete determines the persisted content.
func (m Model) saveCmd() tea.Cmd {
	payload, err := m.ready.store.Snapshot()
	if err != nil {
		return func() tea.Msg { return saveDoneMsg{err: err} }
	}
	backend := m.backend
	return func() tea.Msg {
		return saveDoneMsg{err: backend.Write(payload)}
	}
}

// Store exposes the loaded store for inspection. It returns nil before the
// load completes.
func (m Model) Store() *store.Store {
	if m.ready == nil {
		return nil
	}
	return m.ready.store
}

// Context returns the active view mode and whether the model is ready.
func (m Model) Context() (Context, bool) {
	if m.ready == nil {
		return 0, false
	}
	return m.ready.ctx, true
}
