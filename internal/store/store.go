// Package store owns the canonical ordered collection of projects and the
// persistence contract that backs it.
package store

import (
	"errors"
	"fmt"
	"io/fs"

	"taskman/internal/models"
)

// ErrNotFound is returned when a project id is absent from the store.
var ErrNotFound = errors.New("project not found")

// Store is the in-memory ordered collection of all projects. Insertion order
// is display order. Every mutation goes through Create/Update; callers never
// receive handles into the underlying slice.
type Store struct {
	backend  Backend
	projects []models.Project
	index    map[string]int
}

// New creates an empty store on top of backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		index:   make(map[string]int),
	}
}

// Load reads the persisted payload from backend. A missing payload is a
// fresh start and yields an empty store with a nil error. Read or decode
// failures also yield an empty store; the error is returned for logging
// only and must not abort startup.
func Load(backend Backend) (*Store, error) {
	s := New(backend)

	data, err := backend.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, err
	}

	projects, err := decodeStore(data)
	if err != nil {
		return s, err
	}

	s.projects = projects
	for i, p := range projects {
		s.index[p.ID] = i
	}
	return s, nil
}

// Snapshot encodes the entire current collection. It runs synchronously on
// the caller's timeline so the payload reflects the store at call time even
// when the write itself is dispatched to a goroutine.
func (s *Store) Snapshot() ([]byte, error) {
	return encodeStore(s.List())
}

// Save overwrites the persisted representation in full. On failure the
// in-memory state is untouched and the next save retries from scratch.
func (s *Store) Save() error {
	data, err := s.Snapshot()
	if err != nil {
		return err
	}
	return s.backend.Write(data)
}

// Create appends a new project with a freshly generated id guaranteed
// distinct from every existing id and returns a copy of it.
func (s *Store) Create(name, description string) (models.Project, error) {
	id, err := newProjectID()
	if err != nil {
		return models.Project{}, err
	}
	for {
		if _, taken := s.index[id]; !taken {
			break
		}
		if id, err = newProjectID(); err != nil {
			return models.Project{}, err
		}
	}

	p := models.NewProject(id, name, description)
	s.index[p.ID] = len(s.projects)
	s.projects = append(s.projects, p)
	return p, nil
}

// Get looks up a project by id and returns a copy of it.
func (s *Store) Get(id string) (models.Project, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Project{}, false
	}
	return s.projects[i], true
}

// Update overwrites the name and description of an existing project in
// place. It returns ErrNotFound when the id is absent.
func (s *Store) Update(id, name, description string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	s.projects[i].Name = name
	s.projects[i].Description = description
	return nil
}

// List returns an ordered snapshot of all projects, safe to hold across
// later store mutations.
func (s *Store) List() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// IDs returns the project ids in display order.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.projects))
	for i, p := range s.projects {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of projects.
func (s *Store) Len() int {
	return len(s.projects)
}
