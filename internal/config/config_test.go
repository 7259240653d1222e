package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskman/internal/filesystem"
)

func TestLoad_Defaults(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	cfg, err := Load(fs, "/etc/taskman/config.yaml")
	require.NoError(t, err)

	require.NotEmpty(t, cfg.DataPath)
	require.NotEmpty(t, cfg.LogPath)
	require.Equal(t, 15*time.Second, cfg.AutosaveInterval)
}

func TestLoad_ConfigFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/etc/taskman/config.yaml", []byte(
		"data_path: /srv/taskman/projects.json\nautosave_interval: 30s\n"))

	cfg, err := Load(fs, "/etc/taskman/config.yaml")
	require.NoError(t, err)

	require.Equal(t, "/srv/taskman/projects.json", cfg.DataPath)
	require.Equal(t, 30*time.Second, cfg.AutosaveInterval)
	require.NotEmpty(t, cfg.LogPath, "unset keys still get defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/etc/taskman/config.yaml", []byte("data_path: /from/file.json\n"))
	t.Setenv("TASKMAN_DATA_PATH", "/from/env.json")

	cfg, err := Load(fs, "/etc/taskman/config.yaml")
	require.NoError(t, err)

	require.Equal(t, "/from/env.json", cfg.DataPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/etc/taskman/config.yaml", []byte("data_path: [unclosed\n"))

	_, err := Load(fs, "/etc/taskman/config.yaml")
	if err == nil {
		t.Fatal("a malformed config file the user wrote must be reported")
	}
}

func TestValidate_AutosaveFloor(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/etc/taskman/config.yaml", []byte("autosave_interval: 100ms\n"))

	_, err := Load(fs, "/etc/taskman/config.yaml")
	require.Error(t, err)
}
