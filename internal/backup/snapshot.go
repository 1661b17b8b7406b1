package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jurnalguru/jurnal/internal/journal"
	"github.com/jurnalguru/jurnal/internal/store"
)

// ExportSnapshot reads the full store and returns it as the interchange
// structure, verbatim: every entry (in canonical order, so successive
// exports of the same data are identical) plus both singleton profiles.
// Absent profiles export as their zero values so the document always
// carries all three top-level fields.
func ExportSnapshot(ctx context.Context, st *store.Store) (journal.Backup, error) {
	entries, err := st.ListEntries(ctx)
	if err != nil {
		return journal.Backup{}, fmt.Errorf("export snapshot: %w", err)
	}
	journal.SortCanonical(entries)

	teacher, _, err := st.GetTeacherInfo(ctx)
	if err != nil {
		return journal.Backup{}, fmt.Errorf("export snapshot: %w", err)
	}
	school, _, err := st.GetSchoolInfo(ctx)
	if err != nil {
		return journal.Backup{}, fmt.Errorf("export snapshot: %w", err)
	}

	return journal.Backup{
		Entries:     entries,
		TeacherInfo: teacher,
		SchoolInfo:  school,
	}, nil
}

// Marshal serializes a snapshot to the transportable document form:
// indented JSON with field names preserved, so the file can be
// independently inspected or edited.
func Marshal(b journal.Backup) ([]byte, error) {
	if b.Entries == nil {
		b.Entries = []journal.Entry{}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// DefaultFilename returns the conventional backup file name for the
// given calendar date, e.g. "jurnal-guru-backup-2025-01-10.json".
func DefaultFilename(date string) string {
	return fmt.Sprintf("jurnal-guru-backup-%s.json", date)
}
