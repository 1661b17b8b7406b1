// Package backup implements the snapshot export, validation, and
// destructive restore of the full journal data set.
//
// The interchange format is a single JSON document holding every entry
// plus both singleton profiles (journal.Backup). It is the complete,
// lossless representation of persisted state: no filtering, no omitted
// fields, and it can be inspected or edited by hand.
//
// Candidate documents are validated structurally against an embedded CUE
// schema before anything destructive happens. A malformed document
// surfaces as *ValidationError with the store untouched. A failure after
// the wipe surfaces as *RestoreError, distinguishable so callers can
// warn that the store may be incomplete.
package backup
