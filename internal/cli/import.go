package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"

	"taskman/internal/filesystem"
	"taskman/internal/models"
)

// projectBrief is the frontmatter shape of an importable markdown file. The
// body of the file becomes the project description.
type projectBrief struct {
	Name string `yaml:"name"`
}

// NewImportCommand creates a new import command
func NewImportCommand(fs filesystem.FileSystem, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.md> [<file.md>...]",
		Short: "Create projects from markdown briefs",
		Long: `Create one project per markdown file. The file's YAML frontmatter must
carry a "name" key; the markdown body becomes the description.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, logger, err := openStore(fs, opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var created []models.Project
			for _, path := range args {
				data, err := fs.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				var brief projectBrief
				body, err := frontmatter.Parse(bytes.NewReader(data), &brief)
				if err != nil {
					return fmt.Errorf("failed to parse frontmatter in %s: %w", path, err)
				}
				if strings.TrimSpace(brief.Name) == "" {
					return fmt.Errorf("%s: frontmatter has no name", path)
				}

				p, err := st.Create(strings.TrimSpace(brief.Name), strings.TrimSpace(string(body)))
				if err != nil {
					return fmt.Errorf("failed to create project from %s: %w", path, err)
				}
				created = append(created, p)
			}

			if err := st.Save(); err != nil {
				return fmt.Errorf("failed to save store: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d project(s):\n", len(created))
			for _, p := range created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p.Name)
			}
			return nil
		},
	}
}
