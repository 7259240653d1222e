package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/models"
	"taskman/internal/tui"
)

const (
	focusName = iota
	focusDescription
)

// editForm is the transient edit buffer plus its input widgets and per-field
// validation state. It exists only while the NewProject or EditProject
// context is active; edits to it never touch the store until committed.
type editForm struct {
	buffer models.Project

	name        textinput.Model
	description textinput.Model
	focus       int

	nameField FieldState
	descField FieldState
}

// newEditForm creates a form over a copy of p. For a new project p is the
// zero Project. All field validations start reset to valid.
func newEditForm(p models.Project) *editForm {
	name := textinput.New()
	name.Placeholder = "Project Name"
	name.CharLimit = 120
	name.PromptStyle = tui.FocusedStyle
	name.SetValue(p.Name)

	description := textinput.New()
	description.Placeholder = "Project Description"
	description.CharLimit = 500
	description.SetValue(p.Description)

	return &editForm{
		buffer:      p,
		name:        name,
		description: description,
		focus:       focusName,
		nameField:   validFieldState(),
		descField:   validFieldState(),
	}
}

// focusCmd focuses the active input and returns its blink command.
func (f *editForm) focusCmd() tea.Cmd {
	if f.focus == focusName {
		f.description.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.description.Focus()
}

// nextField advances focus to the other field.
func (f *editForm) nextField() tea.Cmd {
	f.focus = (f.focus + 1) % 2
	return f.focusCmd()
}

// setName updates the buffer and re-runs the name rule.
func (f *editForm) setName(v string) {
	f.buffer.Name = v
	f.nameField = validateName(v)
}

// setDescription updates the buffer. The description has no rule.
func (f *editForm) setDescription(v string) {
	f.buffer.Description = v
}

// updateInputs forwards a message to the focused input widget.
func (f *editForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == focusName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}
