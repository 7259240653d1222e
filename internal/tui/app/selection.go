package app

// Selection tracks which project ids are marked in the list view.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() Selection {
	return Selection{ids: make(map[string]struct{})}
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add marks id as selected. Adding an already-selected id is a no-op.
func (s Selection) Add(id string) {
	s.ids[id] = struct{}{}
}

// Remove unmarks id. Removing an unselected id is a no-op.
func (s Selection) Remove(id string) {
	delete(s.ids, id)
}

// SetAll replaces the selection with exactly the given ids.
func (s *Selection) SetAll(ids []string) {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// AllSelected reports whether every one of total rows is selected. This is a
// size comparison, not a set comparison against the live ids; it holds only
// because projects are never removed from the store. If deletion is ever
// added, the selection must be intersected with the live ids on every store
// mutation.
func (s Selection) AllSelected(total int) bool {
	return len(s.ids) == total
}
