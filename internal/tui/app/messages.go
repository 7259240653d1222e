package app

import (
	"time"

	"taskman/internal/store"
)

// The messages below are the full vocabulary the state machine accepts.
// The view layer translates key presses into these; tests drive the machine
// with them directly.

type (
	// SyncMsg requests that the current store be persisted.
	SyncMsg struct{}

	// NewProjectMsg opens an empty edit buffer for a new project.
	NewProjectMsg struct{}

	// EditProjectMsg opens an edit buffer holding a copy of an existing
	// project. An absent id is a no-op.
	EditProjectMsg struct {
		ID string
	}

	// CancelEditMsg discards the edit buffer and returns to the list.
	CancelEditMsg struct{}

	// NameChangedMsg replaces the buffer's name and re-runs validation.
	NameChangedMsg struct {
		Value string
	}

	// DescriptionChangedMsg replaces the buffer's description.
	DescriptionChangedMsg struct {
		Value string
	}

	// SaveEditMsg commits the edit buffer to the store.
	SaveEditMsg struct{}

	// ToggleSelectedMsg marks or unmarks a single list row.
	ToggleSelectedMsg struct {
		ID       string
		Selected bool
	}

	// ToggleSelectAllMsg marks every row, or none.
	ToggleSelectAllMsg struct {
		Selected bool
	}
)

// storeLoadedMsg completes the background load. It is the only message the
// machine accepts before it is ready. err carries an absorbed load failure
// for logging; the store is usable (empty) either way.
type storeLoadedMsg struct {
	store *store.Store
	err   error
}

// saveDoneMsg reports the completion of an asynchronous write.
type saveDoneMsg struct {
	err error
}

// autosaveTickMsg fires the periodic sync.
type autosaveTickMsg time.Time
