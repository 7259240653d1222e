package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gkampitakis/go-snaps/snaps"

	"taskman/internal/models"
)

func TestViewSnapshots(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = loaded(t, m)
		m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

		snaps.MatchSnapshot(t, m.View())
	})

	t.Run("list with selection", func(t *testing.T) {
		m, _ := newTestModel(t,
			models.Project{Name: "Website", Description: "Rebuild the company site"},
			models.Project{Name: "API", Description: "v2 rollout"},
		)
		m = loaded(t, m)
		m = drive(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
		m = drive(t, m, ToggleSelectedMsg{ID: m.Store().IDs()[1], Selected: true})

		snaps.MatchSnapshot(t, m.View())
	})

	t.Run("form with invalid name", func(t *testing.T) {
		m, _ := newTestModel(t)
		m = loaded(t, m)
		m = drive(t, m,
			tea.WindowSizeMsg{Width: 80, Height: 24},
			NewProjectMsg{},
			NameChangedMsg{Value: ""},
		)

		snaps.MatchSnapshot(t, m.View())
	})
}
