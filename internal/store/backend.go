package store

import (
	"fmt"
	"path/filepath"

	"taskman/internal/filesystem"
)

// Backend is the persistence contract behind a Store. Read returns the last
// written payload, or an error wrapping fs.ErrNotExist when nothing has been
// persisted yet. Write replaces the persisted payload in full.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileBackend persists the store payload as a single file.
type FileBackend struct {
	fs   filesystem.FileSystem
	path string
}

// NewFileBackend creates a FileBackend writing to path.
func NewFileBackend(fsys filesystem.FileSystem, path string) *FileBackend {
	return &FileBackend{
		fs:   fsys,
		path: path,
	}
}

func (b *FileBackend) Read() ([]byte, error) {
	data, err := b.fs.ReadFile(b.path)
	if err != nil {
		// Keep fs.ErrNotExist recognizable for errors.Is.
		return nil, fmt.Errorf("failed to read %s: %w", b.path, err)
	}
	return data, nil
}

func (b *FileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	if !b.fs.Exists(dir) {
		if err := b.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := b.fs.WriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.path, err)
	}
	return nil
}
