package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskman/internal/models"
)

// Update consumes one message at a time. No two messages mutate state
// concurrently; persistence runs in commands whose only effect is a later
// message on this same timeline.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.ready == nil {
		return m.updateLoading(msg)
	}
	return m.updateReady(msg)
}

// updateLoading accepts only the load-completion message; everything else
// is ignored until the store arrives.
func (m Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeLoadedMsg:
		if msg.err != nil {
			// Absorbed: the user starts with an empty list instead of
			// an error screen.
			m.logger.Warn("store load failed, starting empty", zap.Error(msg.err))
		} else {
			m.logger.Info("store loaded", zap.Int("projects", msg.store.Len()))
		}
		m.ready = &readyState{
			store:     msg.store,
			ctx:       ContextProjectList,
			selection: NewSelection(),
		}
		return m, m.autosaveCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		return m, nil
	default:
		return m.apply(msg)
	}
}

// apply is the transition table over the message vocabulary. The key handler
// funnels every gesture through here so that tests and real input take the
// same path.
func (m Model) apply(msg tea.Msg) (Model, tea.Cmd) {
	r := m.ready

	switch msg := msg.(type) {
	case SyncMsg:
		return m, m.saveCmd()

	case autosaveTickMsg:
		return m, tea.Batch(m.saveCmd(), m.autosaveCmd())

	case saveDoneMsg:
		if msg.err != nil {
			// Never fatal: memory is intact and the next sync retries.
			m.logger.Warn("store save failed", zap.Error(msg.err))
		} else {
			m.logger.Debug("store saved")
		}
		return m, nil

	case NewProjectMsg:
		r.form = newEditForm(models.Project{})
		r.ctx = ContextNewProject
		return m, r.form.focusCmd()

	case EditProjectMsg:
		p, ok := r.store.Get(msg.ID)
		if !ok {
			// No edit session opens and no error surfaces.
			m.logger.Debug("edit requested for unknown project", zap.String("id", msg.ID))
			return m, nil
		}
		r.form = newEditForm(p)
		r.ctx = ContextEditProject
		return m, r.form.focusCmd()

	case CancelEditMsg:
		if r.form == nil {
			return m, nil
		}
		r.form = nil
		r.ctx = ContextProjectList
		return m, nil

	case NameChangedMsg:
		if r.form == nil {
			return m, nil
		}
		r.form.setName(msg.Value)
		return m, nil

	case DescriptionChangedMsg:
		if r.form == nil {
			return m, nil
		}
		r.form.setDescription(msg.Value)
		return m, nil

	case SaveEditMsg:
		if r.form == nil {
			return m, nil
		}
		// Commits regardless of the current validation state; the
		// validator informs the view only.
		switch r.ctx {
		case ContextNewProject:
			if _, err := r.store.Create(r.form.buffer.Name, r.form.buffer.Description); err != nil {
				m.logger.Error("create failed", zap.Error(err))
			}
		case ContextEditProject:
			if err := r.store.Update(r.form.buffer.ID, r.form.buffer.Name, r.form.buffer.Description); err != nil {
				m.logger.Warn("update failed", zap.String("id", r.form.buffer.ID), zap.Error(err))
			}
		}
		r.form = nil
		r.ctx = ContextProjectList
		return m, nil

	case ToggleSelectedMsg:
		if msg.Selected {
			r.selection.Add(msg.ID)
		} else {
			r.selection.Remove(msg.ID)
		}
		return m, nil

	case ToggleSelectAllMsg:
		if msg.Selected {
			r.selection.SetAll(r.store.IDs())
		} else {
			r.selection.Clear()
		}
		return m, nil
	}

	return m, nil
}

// handleKey is the view-layer half: it translates gestures into the message
// vocabulary and otherwise only moves presentation state (cursor, input
// widgets).
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.ready
	if r.ctx == ContextProjectList {
		return m.handleListKey(msg)
	}

	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		return m.apply(CancelEditMsg{})
	case key.Matches(msg, m.formKeys.Save):
		return m.apply(SaveEditMsg{})
	case key.Matches(msg, m.formKeys.NextField):
		return m, r.form.nextField()
	}

	// Everything else edits the focused input, then runs the matching
	// change message against the buffer.
	cmd := r.form.updateInputs(msg)
	var next Model
	var applyCmd tea.Cmd
	if r.form.focus == focusName {
		next, applyCmd = m.apply(NameChangedMsg{Value: r.form.name.Value()})
	} else {
		next, applyCmd = m.apply(DescriptionChangedMsg{Value: r.form.description.Value()})
	}
	return next, tea.Batch(cmd, applyCmd)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.ready
	projects := r.store.List()

	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.listKeys.Up):
		if r.cursor > 0 {
			r.cursor--
		}
		return m, nil

	case key.Matches(msg, m.listKeys.Down):
		if r.cursor < len(projects)-1 {
			r.cursor++
		}
		return m, nil

	case key.Matches(msg, m.listKeys.New):
		return m.apply(NewProjectMsg{})

	case key.Matches(msg, m.listKeys.Edit):
		if r.cursor >= len(projects) {
			return m, nil
		}
		return m.apply(EditProjectMsg{ID: projects[r.cursor].ID})

	case key.Matches(msg, m.listKeys.Toggle):
		if r.cursor >= len(projects) {
			return m, nil
		}
		id := projects[r.cursor].ID
		return m.apply(ToggleSelectedMsg{ID: id, Selected: !r.selection.Has(id)})

	case key.Matches(msg, m.listKeys.ToggleAll):
		return m.apply(ToggleSelectAllMsg{Selected: !r.selection.AllSelected(r.store.Len())})

	case key.Matches(msg, m.listKeys.Sync):
		return m.apply(SyncMsg{})
	}

	return m, nil
}
