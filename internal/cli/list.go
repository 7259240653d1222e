package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskman/internal/filesystem"
	"taskman/internal/tui"
)

// NewListCommand creates a new list command
func NewListCommand(fs filesystem.FileSystem, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := openStore(fs, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			projects := st.List()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "You have no projects")
				return nil
			}

			var b strings.Builder
			b.WriteString(tui.TitleStyle.Render("Projects"))
			b.WriteString("\n")
			for _, p := range projects {
				b.WriteString(fmt.Sprintf("  %s", p.Name))
				if p.Description != "" {
					b.WriteString("  " + tui.SubtleStyle.Render(p.Description))
				}
				b.WriteString("\n")
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}
