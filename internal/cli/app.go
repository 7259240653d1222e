package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/filesystem"
	"taskman/internal/logging"
	"taskman/internal/store"
	"taskman/internal/tui/app"
)

// runApp launches the resident application. The store load happens in the
// background after the program starts; the model renders a loading state
// until it completes.
func runApp(fs filesystem.FileSystem, opts *rootOptions) error {
	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model := app.New(app.Options{
		Backend:          store.NewFileBackend(fs, cfg.DataPath),
		Logger:           logger,
		AutosaveInterval: cfg.AutosaveInterval,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
