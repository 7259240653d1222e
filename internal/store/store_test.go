package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"taskman/internal/filesystem"
)

const dataPath = "/home/user/.local/share/taskman/projects.json"

func newTestBackend() (*filesystem.MockFileSystem, *FileBackend) {
	fs := filesystem.NewMockFileSystem()
	return fs, NewFileBackend(fs, dataPath)
}

func TestLoad_MissingPayloadIsFreshStart(t *testing.T) {
	_, backend := newTestBackend()

	s, err := Load(backend)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing payload", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d projects", s.Len())
	}
}

func TestLoad_CorruptPayloadYieldsEmptyStore(t *testing.T) {
	fs, backend := newTestBackend()
	fs.AddFile(dataPath, []byte("{ not json"))

	s, err := Load(backend)
	if err == nil {
		t.Fatal("expected decode error to be reported")
	}
	if s == nil || s.Len() != 0 {
		t.Fatal("corrupt payload must still yield a usable empty store")
	}
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	fs, backend := newTestBackend()
	fs.AddFile(dataPath, []byte(`{"version": 99, "projects": []}`))

	s, err := Load(backend)
	require.Error(t, err)
	require.Equal(t, 0, s.Len())
}

func TestLoad_DuplicateIDsRejected(t *testing.T) {
	fs, backend := newTestBackend()
	fs.AddFile(dataPath, []byte(`{"version": 1, "projects": [
		{"id": "a", "name": "one", "description": ""},
		{"id": "a", "name": "two", "description": ""}
	]}`))

	s, err := Load(backend)
	require.Error(t, err)
	require.Equal(t, 0, s.Len())
}

func TestRoundTrip(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	first, err := s.Create("Website", "Rebuild the company site")
	require.NoError(t, err)
	second, err := s.Create("API", "v2 rollout")
	require.NoError(t, err)
	require.NoError(t, s.Save())

	loaded, err := Load(backend)
	require.NoError(t, err)
	require.Equal(t, []string{first.ID, second.ID}, loaded.IDs())
	require.Equal(t, s.List(), loaded.List())
}

func TestCreate_GeneratesDistinctIDs(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := s.Create("p", "")
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if p.ID == "" {
			t.Fatal("Create() returned empty id")
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
	if s.Len() != 50 {
		t.Fatalf("expected 50 projects, got %d", s.Len())
	}
}

func TestCreate_AppendsInOrder(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	a, _ := s.Create("a", "")
	b, _ := s.Create("b", "")
	c, _ := s.Create("c", "")

	require.Equal(t, []string{a.ID, b.ID, c.ID}, s.IDs())
}

func TestGet_AbsentID(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	if _, ok := s.Get("missing"); ok {
		t.Fatal("Get() on an absent id must report not found")
	}
}

func TestUpdate(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	p, err := s.Create("old", "old desc")
	require.NoError(t, err)

	require.NoError(t, s.Update(p.ID, "new", "new desc"))

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	require.Equal(t, "new", got.Name)
	require.Equal(t, "new desc", got.Description)
	require.Equal(t, 1, s.Len())
}

func TestUpdate_NotFound(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	err := s.Update("missing", "n", "d")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestList_IsSnapshot(t *testing.T) {
	_, backend := newTestBackend()
	s := New(backend)

	p, _ := s.Create("before", "")
	snapshot := s.List()

	require.NoError(t, s.Update(p.ID, "after", ""))

	if snapshot[0].Name != "before" {
		t.Fatal("List() snapshot must not alias internal state")
	}
}

func TestSave_FailureLeavesMemoryIntact(t *testing.T) {
	fs, backend := newTestBackend()
	s := New(backend)

	p, err := s.Create("kept", "")
	require.NoError(t, err)

	fs.FailWrites(errors.New("disk full"))
	require.Error(t, s.Save())

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	require.Equal(t, "kept", got.Name)

	// A later save succeeds once the backend recovers.
	fs.FailWrites(nil)
	require.NoError(t, s.Save())

	loaded, err := Load(backend)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
}
