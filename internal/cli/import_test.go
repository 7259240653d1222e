package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/filesystem"
	"taskman/internal/store"
)

func TestImportCommand(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/briefs/website.md", []byte("---\nname: Website\n---\n\nRebuild the company site\n"))
	fs.AddFile("/briefs/api.md", []byte("---\nname: API\n---\n\nv2 rollout\n"))

	cmd := NewRootCommand(fs)
	cmd.SetArgs(testArgs(t, "import", "/briefs/website.md", "/briefs/api.md"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "Imported 2 project(s)")

	loaded, err := store.Load(store.NewFileBackend(fs, testDataPath))
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	projects := loaded.List()
	require.Equal(t, "Website", projects[0].Name)
	require.Equal(t, "Rebuild the company site", projects[0].Description)
	require.Equal(t, "API", projects[1].Name)
}

func TestImportCommand_MissingName(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/briefs/anon.md", []byte("---\nowner: nobody\n---\n\nNo name here\n"))

	cmd := NewRootCommand(fs)
	cmd.SetArgs(testArgs(t, "import", "/briefs/anon.md"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}

func TestImportCommand_AppendsToExistingStore(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	seedStore(t, fs, "Existing")
	fs.AddFile("/briefs/new.md", []byte("---\nname: New\n---\n\nFresh\n"))

	cmd := NewRootCommand(fs)
	cmd.SetArgs(testArgs(t, "import", "/briefs/new.md"))
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	loaded, err := store.Load(store.NewFileBackend(fs, testDataPath))
	require.NoError(t, err)
	require.Equal(t, []string{"Existing", "New"}, []string{loaded.List()[0].Name, loaded.List()[1].Name})
}
