package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskman/internal/filesystem"
	"taskman/internal/tui/quickadd"
)

// NewAddCommand creates a new add command
func NewAddCommand(fs filesystem.FileSystem, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		Long:  `Create a new project by filling in a name and description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := openStore(fs, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			flow := quickadd.NewFlow(st)
			result, err := flow.Run()
			if err != nil {
				return fmt.Errorf("failed to run form: %w", err)
			}

			if result == nil {
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), quickadd.RenderSuccess(result))
			return nil
		},
	}
}
