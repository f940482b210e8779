package library

import (
	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

// Selection is the set of catalog product ids the user currently has
// chosen. Membership is unique; insertion order is kept for display.
type Selection struct {
	catalog *catalog.Catalog
	ids     []string
	members map[string]struct{}
}

// NewSelection returns an empty selection over c.
func NewSelection(c *catalog.Catalog) *Selection {
	return &Selection{
		catalog: c,
		members: make(map[string]struct{}),
	}
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id string) error {
	if !s.catalog.Contains(id) {
		return newInvalidIDError(id)
	}

	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
		return nil
	}

	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
	return nil
}

// SelectAll replaces the selection with the full catalog, in catalog order.
func (s *Selection) SelectAll() {
	s.ids = s.catalog.IDs()
	s.members = make(map[string]struct{}, len(s.ids))
	for _, id := range s.ids {
		s.members[id] = struct{}{}
	}
}

// DeselectAll empties the selection.
func (s *Selection) DeselectAll() {
	s.ids = nil
	s.members = make(map[string]struct{})
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected products.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IsComplete reports whether every catalog product is selected.
func (s *Selection) IsComplete() bool {
	return len(s.ids) > 0 && len(s.ids) == s.catalog.Len()
}
