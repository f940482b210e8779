// Package library models the user's product selection, the composition of
// a selection into a saved item, and the ordered collection of saved items.
package library

// Library is an ordered collection of items keyed by id.
type Library struct {
	items []Item
}

// NewLibrary builds a library from previously persisted items. It rejects
// duplicate or blank ids.
func NewLibrary(items []Item) (*Library, error) {
	lib := &Library{items: make([]Item, 0, len(items))}
	for _, item := range items {
		if err := lib.Append(item); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Append adds item at the end of the library.
func (l *Library) Append(item Item) error {
	if item.ID == "" {
		return newValidationError("item id is required", nil)
	}
	if _, ok := l.indexOf(item.ID); ok {
		return newDuplicateError(item.ID)
	}
	l.items = append(l.items, item.Clone())
	return nil
}

// Delete removes the item with id, keeping the relative order of the rest.
func (l *Library) Delete(id string) (Item, error) {
	i, ok := l.indexOf(id)
	if !ok {
		return Item{}, newNotFoundError(id)
	}
	removed := l.items[i]
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return removed, nil
}

// Get returns a copy of the item with id.
func (l *Library) Get(id string) (Item, bool) {
	i, ok := l.indexOf(id)
	if !ok {
		return Item{}, false
	}
	return l.items[i].Clone(), true
}

// Last returns the most recently appended item.
func (l *Library) Last() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[len(l.items)-1].Clone(), true
}

// List returns a copy of every item in insertion order.
func (l *Library) List() []Item {
	out := make([]Item, len(l.items))
	for i, item := range l.items {
		out[i] = item.Clone()
	}
	return out
}

// Len returns the number of items.
func (l *Library) Len() int {
	return len(l.items)
}

func (l *Library) indexOf(id string) (int, bool) {
	for i, item := range l.items {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}
