// Package quickadd creates a single project through a huh form, without
// entering the resident list application.
package quickadd

import (
	"errors"
	"fmt"
	"strings"

	huh "github.com/charmbracelet/huh"

	"taskman/internal/models"
	"taskman/internal/store"
	"taskman/internal/tui"
)

// Flow orchestrates the quick-add form.
type Flow struct {
	store *store.Store
	theme *huh.Theme
}

// Result captures the successful output of the flow.
type Result struct {
	Project models.Project
}

// NewFlow constructs a Flow over an already-loaded store.
func NewFlow(st *store.Store) *Flow {
	return &Flow{
		store: st,
		theme: tui.NewHuhTheme(),
	}
}

// Run executes the form, then creates and persists the project. It returns
// a nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	var name, description string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Project Name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("Name is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Placeholder("Project Description").
				Lines(3).
				Value(&description),
		).
			Title("New Project"),
	).
		WithTheme(f.theme).
		WithShowHelp(true)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	project, err := f.store.Create(name, strings.TrimSpace(description))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if err := f.store.Save(); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	return &Result{Project: project}, nil
}

// RenderSuccess renders the confirmation printed after the flow finishes.
func RenderSuccess(r *Result) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Project Created"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s\n", r.Project.Name))
	if r.Project.Description != "" {
		b.WriteString(fmt.Sprintf("  %s\n", tui.SubtleStyle.Render(r.Project.Description)))
	}

	return b.String()
}
