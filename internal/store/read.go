package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// ListEntries returns every persisted entry. No order is guaranteed;
// callers sort (journal.SortCanonical is the canonical order).
func (s *Store) ListEntries(ctx context.Context) ([]journal.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, class, hours, material, obstacle, follow_up, notes, attendance
		FROM entries
	`)
	if err != nil {
		return nil, storageErr("list entries", err)
	}
	defer rows.Close()

	entries := make([]journal.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, storageErr("list entries", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list entries", err)
	}

	return entries, nil
}

// GetEntry returns the entry with the given id. The bool reports whether
// it exists; absence is not an error.
func (s *Store) GetEntry(ctx context.Context, id string) (journal.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, class, hours, material, obstacle, follow_up, notes, attendance
		FROM entries WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return journal.Entry{}, false, nil
	}
	if err != nil {
		return journal.Entry{}, false, storageErr("get entry", err)
	}
	return e, true, nil
}

// CountEntries returns the number of persisted entries.
func (s *Store) CountEntries(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, storageErr("count entries", err)
	}
	return n, nil
}

// GetTeacherInfo returns the singleton teacher profile. The bool is
// false on first run, before any save; that is an absent signal, not an
// error, and lets the caller apply a default.
func (s *Store) GetTeacherInfo(ctx context.Context) (journal.TeacherInfo, bool, error) {
	var info journal.TeacherInfo
	ok, err := s.getConfig(ctx, "teacher_config", "get teacher info", &info)
	return info, ok, err
}

// GetSchoolInfo returns the singleton school profile; same absent
// semantics as GetTeacherInfo.
func (s *Store) GetSchoolInfo(ctx context.Context) (journal.SchoolInfo, bool, error) {
	var info journal.SchoolInfo
	ok, err := s.getConfig(ctx, "school_config", "get school info", &info)
	return info, ok, err
}

func (s *Store) getConfig(ctx context.Context, table, op string, v any) (bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT data FROM %s WHERE id = ?`, table), singletonKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(op, err)
	}

	if err := unmarshalConfig(data, v); err != nil {
		return false, storageErr(op, err)
	}
	return true, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (journal.Entry, error) {
	var (
		e        journal.Entry
		hoursStr string
		attStr   string
	)
	err := sc.Scan(&e.ID, &e.Date, &e.Class, &hoursStr,
		&e.Material, &e.Obstacle, &e.FollowUp, &e.Notes, &attStr)
	if err != nil {
		return journal.Entry{}, err
	}

	if e.Hours, err = unmarshalHours(hoursStr); err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
	}
	if e.Attendance, err = unmarshalAttendance(attStr); err != nil {
		return journal.Entry{}, fmt.Errorf("entry %s: %w", e.ID, err)
	}

	return e, nil
}
