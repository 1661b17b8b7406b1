// Package journal provides the domain types and pure logic for the
// teaching journal: entries, attendance, the teacher and school profiles,
// the backup interchange structure, filtering, canonical ordering, and
// the selection tracker.
//
// This package contains no I/O. All other internal packages import
// journal; journal imports nothing internal, keeping it the foundational
// layer with no circular dependencies.
//
// Invariants owned here:
//   - Entry ids are opaque, unique, assigned at creation, never reused.
//   - Entry.Hours is ascending and duplicate-free after any mutation.
//   - Canonical entry order is ascending by date, ties broken by the
//     first lesson hour.
package journal
