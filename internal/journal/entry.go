package journal

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used everywhere: ISO 8601 with
// no time component. Dates are UTC-anchored to avoid timezone drift.
const DateLayout = "2006-01-02"

// NewID returns a fresh opaque identifier.
//
// UUIDv7 embeds a timestamp in the most significant bits, so ids created
// later sort after ids created earlier. Nothing relies on that, but it
// helps when eyeballing the raw database.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Today returns the current UTC calendar date in DateLayout form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeHours returns hours sorted ascending with duplicates removed.
// The input slice is not mutated. A nil or empty input yields an empty,
// non-nil slice so the value always serializes as a JSON array.
func NormalizeHours(hours []int) []int {
	out := slices.Clone(hours)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []int{}
	}
	return out
}

// Normalize enforces the entry invariants in place: hours ascending and
// duplicate-free, nil slices replaced by empty ones.
func (e *Entry) Normalize() {
	e.Hours = NormalizeHours(e.Hours)
	if e.Attendance == nil {
		e.Attendance = []AttendanceRecord{}
	}
}

// Validate checks the fields a well-formed entry must carry. The class
// roster is deliberately not checked here: allowed class labels are a
// UI-level concern and the store accepts any label.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry has no id")
	}
	if !ValidDate(e.Date) {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", e.Date)
	}
	if e.Class == "" {
		return fmt.Errorf("class is required")
	}
	if e.Material == "" {
		return fmt.Errorf("material is required")
	}
	for _, a := range e.Attendance {
		if !a.Status.Valid() {
			return fmt.Errorf("invalid attendance status %q for %q", a.Status, a.Name)
		}
	}
	return nil
}

// NewEntry builds an entry with a fresh id and normalized hours.
func NewEntry(date, class string, hours []int, material, obstacle, followUp, notes string, attendance []AttendanceRecord) Entry {
	e := Entry{
		ID:         NewID(),
		Date:       date,
		Class:      class,
		Hours:      hours,
		Material:   material,
		Obstacle:   obstacle,
		FollowUp:   followUp,
		Attendance: attendance,
		Notes:      notes,
	}
	e.Normalize()
	return e
}

// Copy duplicates the entry under a fresh id with the date reset to the
// given day (normally today). Attendance records are duplicated with
// freshly generated ids so the copy shares nothing with the source.
func (e Entry) Copy(date string) Entry {
	dup := e
	dup.ID = NewID()
	dup.Date = date
	dup.Hours = NormalizeHours(e.Hours)
	dup.Attendance = make([]AttendanceRecord, len(e.Attendance))
	for i, a := range e.Attendance {
		dup.Attendance[i] = AttendanceRecord{ID: NewID(), Name: a.Name, Status: a.Status}
	}
	return dup
}

// FirstHour returns the lowest lesson period of the entry, or 0 when no
// hours are recorded. Used as the tie-breaker in canonical ordering.
func (e Entry) FirstHour() int {
	if len(e.Hours) == 0 {
		return 0
	}
	return e.Hours[0]
}

// SortCanonical orders entries in place: ascending by date, ties broken
// by ascending first hour. This is the one order entries are displayed
// and exported in.
func SortCanonical(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmpString(a.Date, b.Date); c != 0 {
			return c
		}
		return a.FirstHour() - b.FirstHour()
	})
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
