package journal

// Selection tracks the set of entry ids marked for a batch operation
// (delete, export). It is transient state scoped to the current filtered
// view and is never persisted.
//
// A selection may go stale: ids it holds can vanish from the store
// between marking and use. Consumers resolve the selection against the
// live entry list and silently drop dead ids rather than fail.
//
// Not safe for concurrent use; the journal is a single-actor system.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips membership of the id.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Has reports whether the id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// SelectAll replaces the selection with every id in the given view.
func (s *Selection) SelectAll(view []Entry) {
	s.ids = make(map[string]struct{}, len(view))
	for _, e := range view {
		s.ids[e.ID] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Remove drops the id from the selection. Deleting an entry calls this
// so the selection never outlives the store row.
func (s *Selection) Remove(id string) {
	delete(s.ids, id)
}

// Resolve returns the selected entries present in the given live list,
// in canonical order. Ids with no matching entry are dropped silently
// and also pruned from the selection.
func (s *Selection) Resolve(entries []Entry) []Entry {
	out := make([]Entry, 0, len(s.ids))
	live := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		live[e.ID] = struct{}{}
		if s.Has(e.ID) {
			out = append(out, e)
		}
	}
	for id := range s.ids {
		if _, ok := live[id]; !ok {
			delete(s.ids, id)
		}
	}
	SortCanonical(out)
	return out
}

// IDs returns the selected ids in unspecified order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
