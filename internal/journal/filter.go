package journal

// Filter narrows a list of entries by date range and class.
//
// The empty string is the sentinel for "unconstrained" on every
// dimension; it never means "match empty". Date bounds are inclusive and
// compared lexicographically on the YYYY-MM-DD form, which is equivalent
// to chronological order.
type Filter struct {
	StartDate string
	EndDate   string
	Class     string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.StartDate == "" && f.EndDate == "" && f.Class == ""
}

// Matches reports whether the entry satisfies every set dimension.
func (f Filter) Matches(e Entry) bool {
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	if f.Class != "" && e.Class != f.Class {
		return false
	}
	return true
}

// Apply returns the entries satisfying the filter, preserving input
// order. It is pure: the input is never mutated, and identical inputs
// always yield identical output. Callers keep entries in canonical order
// before filtering; Apply does not re-sort.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
