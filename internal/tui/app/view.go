package app

import (
	"fmt"
	"strings"

	"taskman/internal/tui"
)

// View renders the current application state. It reads state only; every
// mutation goes through Update.
func (m Model) View() string {
	if m.ready == nil {
		return m.viewLoading()
	}

	switch m.ready.ctx {
	case ContextNewProject, ContextEditProject:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m Model) viewLoading() string {
	return fmt.Sprintf("\n %s Loading projects…\n", m.spinner.View())
}

func (m Model) viewList() string {
	r := m.ready
	projects := r.store.List()

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Projects"))
	b.WriteString("\n\n")

	if len(projects) == 0 {
		b.WriteString(tui.SubtleStyle.Render("You have no projects"))
		b.WriteString("\n")
		b.WriteString(tui.HelpStyle.Render(m.help.View(m.listKeys)))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s Select All\n\n", checkbox(r.selection.AllSelected(r.store.Len()))))

	for i, p := range projects {
		cursor := " "
		if r.cursor == i {
			cursor = tui.SelectedStyle.Render("›")
		}

		name := p.Name
		if r.cursor == i {
			name = tui.SelectedStyle.Render(name)
		}

		row := fmt.Sprintf("%s %s %s", cursor, checkbox(r.selection.Has(p.ID)), name)
		if p.Description != "" {
			row += "  " + tui.SubtleStyle.Render(p.Description)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(m.help.View(m.listKeys)))
	return b.String()
}

func (m Model) viewForm() string {
	r := m.ready
	f := r.form

	title := "New Project"
	if r.ctx == ContextEditProject {
		title = "Edit Project"
	}

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(tui.LabelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(f.name.View())
	b.WriteString("\n")
	if !f.nameField.Valid {
		b.WriteString(tui.ErrorStyle.Render(f.nameField.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(tui.LabelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n")
	if !f.descField.Valid {
		b.WriteString(tui.ErrorStyle.Render(f.descField.Message))
		b.WriteString("\n")
	}

	b.WriteString(tui.HelpStyle.Render(m.help.View(m.formKeys)))
	return b.String()
}

func checkbox(checked bool) string {
	if checked {
		return tui.CheckedStyle.Render("[✓]")
	}
	return tui.UncheckedStyle.Render("[ ]")
}
