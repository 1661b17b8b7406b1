package store

import (
	"context"
	"fmt"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// UpsertEntry inserts the entry if its id is absent, replaces it in full
// if present. Idempotent under identical input. A single entry write is
// atomic: it either lands completely or not at all.
func (s *Store) UpsertEntry(ctx context.Context, e journal.Entry) error {
	hoursJSON, err := marshalHours(e.Hours)
	if err != nil {
		return storageErr("upsert entry", err)
	}
	attJSON, err := marshalAttendance(e.Attendance)
	if err != nil {
		return storageErr("upsert entry", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries
		(id, date, class, hours, material, obstacle, follow_up, notes, attendance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			class = excluded.class,
			hours = excluded.hours,
			material = excluded.material,
			obstacle = excluded.obstacle,
			follow_up = excluded.follow_up,
			notes = excluded.notes,
			attendance = excluded.attendance
	`,
		e.ID, e.Date, e.Class, hoursJSON,
		e.Material, e.Obstacle, e.FollowUp, e.Notes, attJSON,
	)
	if err != nil {
		return storageErr("upsert entry", err)
	}

	return nil
}

// DeleteEntry removes the entry if present. Deleting an id that does not
// exist is a no-op, not an error.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
		return storageErr("delete entry", err)
	}
	return nil
}

// DeleteEntries removes all listed ids in one transaction: either every
// id is removed or none are. Ids not present are skipped silently.
func (s *Store) DeleteEntries(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("delete entries", fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback() // No-op if committed

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id); err != nil {
			return storageErr("delete entries", fmt.Errorf("delete %s: %w", id, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("delete entries", fmt.Errorf("commit: %w", err))
	}

	return nil
}

// SaveTeacherInfo overwrites the singleton teacher profile in place.
// The profile is created implicitly on first save.
func (s *Store) SaveTeacherInfo(ctx context.Context, info journal.TeacherInfo) error {
	return s.saveConfig(ctx, "teacher_config", "save teacher info", info)
}

// SaveSchoolInfo overwrites the singleton school profile in place.
func (s *Store) SaveSchoolInfo(ctx context.Context, info journal.SchoolInfo) error {
	return s.saveConfig(ctx, "school_config", "save school info", info)
}

func (s *Store) saveConfig(ctx context.Context, table, op string, v any) error {
	data, err := marshalConfig(v)
	if err != nil {
		return storageErr(op, err)
	}

	// Fixed key keeps the container at exactly one logical row.
	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, table), singletonKey, data)
	if err != nil {
		return storageErr(op, err)
	}

	return nil
}

// ClearAll empties the entries and both singleton profiles in one
// transaction. Used only as the first step of a restore or an explicit
// full wipe.
func (s *Store) ClearAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("clear all", fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	for _, table := range []string{"entries", "teacher_config", "school_config"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return storageErr("clear all", fmt.Errorf("clear %s: %w", table, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("clear all", fmt.Errorf("commit: %w", err))
	}

	return nil
}
