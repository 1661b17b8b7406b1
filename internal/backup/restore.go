package backup

import (
	"context"
	"fmt"

	"github.com/jurnalguru/jurnal/internal/journal"
	"github.com/jurnalguru/jurnal/internal/store"
)

// RestoreSnapshot destructively replaces the entire store with the
// snapshot's contents. The snapshot must come from ValidateSnapshot.
//
// The operation is not reversible and no pre-restore copy is taken;
// callers obtain explicit confirmation before invoking it.
//
// Order is strict: the store is wiped atomically first, then every
// entry is re-inserted, then both profiles are saved. The wipe is one
// transaction, so a failure there leaves the store unchanged and
// surfaces as the store's own error. Any failure after the wipe leaves
// the store partially populated and surfaces as *RestoreError; there is
// no rollback.
func RestoreSnapshot(ctx context.Context, st *store.Store, b journal.Backup) error {
	if err := st.ClearAll(ctx); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}

	for i, e := range b.Entries {
		e.Normalize()
		if err := st.UpsertEntry(ctx, e); err != nil {
			return &RestoreError{Inserted: i, Err: err}
		}
	}

	if err := st.SaveTeacherInfo(ctx, b.TeacherInfo); err != nil {
		return &RestoreError{Inserted: len(b.Entries), Err: err}
	}
	if err := st.SaveSchoolInfo(ctx, b.SchoolInfo); err != nil {
		return &RestoreError{Inserted: len(b.Entries), Err: err}
	}

	return nil
}

// RestoreDocument validates a raw backup document and, when valid,
// replaces the store with its contents. Convenience for callers that
// have already confirmed the destructive action.
func RestoreDocument(ctx context.Context, st *store.Store, raw []byte) (journal.Backup, error) {
	b, err := ValidateSnapshot(raw)
	if err != nil {
		return journal.Backup{}, err
	}
	if err := RestoreSnapshot(ctx, st, b); err != nil {
		return journal.Backup{}, err
	}
	return b, nil
}
