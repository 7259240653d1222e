package filesystem

import (
	"io/fs"
	"path/filepath"
)

// MockFileSystem provides an in-memory filesystem for testing
type MockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool

	writeErr error
	readErr  error
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem, creating parent directories
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = content

	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" {
		mfs.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// FailWrites makes every subsequent WriteFile return err
func (mfs *MockFileSystem) FailWrites(err error) {
	mfs.writeErr = err
}

// FailReads makes every subsequent ReadFile return err
func (mfs *MockFileSystem) FailReads(err error) {
	mfs.readErr = err
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if mfs.readErr != nil {
		return nil, mfs.readErr
	}
	content, exists := mfs.files[filepath.Clean(path)]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if mfs.writeErr != nil {
		return mfs.writeErr
	}
	mfs.AddFile(path, data)
	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	for cleanPath != "." && cleanPath != "/" {
		mfs.dirs[cleanPath] = true
		cleanPath = filepath.Dir(cleanPath)
	}
	return nil
}

func (mfs *MockFileSystem) Exists(path string) bool {
	cleanPath := filepath.Clean(path)
	if _, ok := mfs.files[cleanPath]; ok {
		return true
	}
	return mfs.dirs[cleanPath]
}
