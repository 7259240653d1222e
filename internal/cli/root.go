package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskman/internal/config"
	"taskman/internal/filesystem"
	"taskman/internal/logging"
	"taskman/internal/store"
)

// rootOptions carries the persistent flag values shared by all commands.
type rootOptions struct {
	configPath string
	dataPath   string
	logPath    string
}

// NewRootCommand creates the root command. Running taskman without a
// subcommand launches the interactive application.
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "taskman",
		Short: "Manage your projects from the terminal",
		Long: `taskman keeps a list of projects (name + description) in a local store
with periodic autosave. Run it without arguments for the interactive
application, or use the subcommands for one-shot operations.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(fs, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/taskman/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "project store file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "log file (overrides config)")

	rootCmd.AddCommand(NewAddCommand(fs, opts))
	rootCmd.AddCommand(NewListCommand(fs, opts))
	rootCmd.AddCommand(NewImportCommand(fs, opts))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// loadConfig resolves configuration, applying flag overrides on top.
func loadConfig(fs filesystem.FileSystem, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(fs, opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.dataPath != "" {
		cfg.DataPath = opts.dataPath
	}
	if opts.logPath != "" {
		cfg.LogPath = opts.logPath
	}
	return cfg, nil
}

// openStore loads config, logger, and store for the one-shot subcommands.
// An absorbed load failure is logged, never surfaced.
func openStore(fs filesystem.FileSystem, opts *rootOptions) (*store.Store, *zap.Logger, error) {
	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}

	backend := store.NewFileBackend(fs, cfg.DataPath)
	st, loadErr := store.Load(backend)
	if loadErr != nil {
		logger.Warn("store load failed, starting empty", zap.Error(loadErr))
	}

	return st, logger, nil
}
