package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "1", Date: "2025-01-10", Class: "7A", Hours: []int{1}},
		{ID: "2", Date: "2025-01-15", Class: "7B", Hours: []int{2}},
		{ID: "3", Date: "2025-02-01", Class: "7A", Hours: []int{3}},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"unset matches all", Filter{}, []string{"1", "2", "3"}},
		{"start date inclusive", Filter{StartDate: "2025-01-15"}, []string{"2", "3"}},
		{"start date between", Filter{StartDate: "2025-01-12"}, []string{"2", "3"}},
		{"end date inclusive", Filter{EndDate: "2025-01-15"}, []string{"1", "2"}},
		{"class only", Filter{Class: "7A"}, []string{"1", "3"}},
		{"range and class", Filter{StartDate: "2025-01-01", EndDate: "2025-01-31", Class: "7A"}, []string{"1"}},
		{"empty result", Filter{Class: "9C"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(testEntries())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterApply_PreservesOrderAndInput(t *testing.T) {
	in := testEntries()
	got := Filter{}.Apply(in)

	assert.Equal(t, in, got)
	// Pure: the input slice is untouched and the output is a copy.
	got[0].ID = "mutated"
	assert.Equal(t, "1", in[0].ID)
}

// Narrowing any dimension never grows the result set.
func TestFilterApply_Monotonic(t *testing.T) {
	in := testEntries()
	base := Filter{}.Apply(in)

	narrower := []Filter{
		{StartDate: "2025-01-11"},
		{EndDate: "2025-01-31"},
		{Class: "7B"},
		{StartDate: "2025-01-11", EndDate: "2025-01-31", Class: "7B"},
	}
	for _, f := range narrower {
		assert.LessOrEqual(t, len(f.Apply(in)), len(base))
	}
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Class: "7A"}.IsZero())
	assert.False(t, Filter{StartDate: "2025-01-01"}.IsZero())
}
