package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jurnalguru/jurnal/internal/journal"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "jurnal.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry(id, date, class string) journal.Entry {
	return journal.Entry{
		ID:       id,
		Date:     date,
		Class:    class,
		Hours:    []int{1, 2},
		Material: "Struktur data",
		Obstacle: "Proyektor mati",
		FollowUp: "Ulangi minggu depan",
		Notes:    "",
		Attendance: []journal.AttendanceRecord{
			{ID: "a1", Name: "Budi", Status: journal.StatusSick},
		},
	}
}

func TestUpsertEntry_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := sampleEntry("e1", "2025-01-10", "7A")

	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("UpsertEntry() failed: %v", err)
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !reflect.DeepEqual(entries[0], e) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", entries[0], e)
	}
}

func TestUpsertEntry_Idempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	e := sampleEntry("e1", "2025-01-10", "7A")

	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries after double upsert, want 1", len(entries))
	}
}

func TestUpsertEntry_ReplacesAllFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	e := sampleEntry("e1", "2025-01-10", "7A")
	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("insert: %v", err)
	}

	e.Date = "2025-01-11"
	e.Class = "7B"
	e.Hours = []int{5}
	e.Material = "Revisi"
	e.Attendance = []journal.AttendanceRecord{}
	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, ok, err := s.GetEntry(ctx, "e1")
	if err != nil || !ok {
		t.Fatalf("GetEntry() = ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, e) {
		t.Errorf("replace mismatch:\n got %+v\nwant %+v", got, e)
	}
}

func TestGetEntry_Absent(t *testing.T) {
	s := testStore(t)

	_, ok, err := s.GetEntry(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetEntry() failed: %v", err)
	}
	if ok {
		t.Error("GetEntry() reported a nonexistent entry as present")
	}
}

func TestDeleteEntry(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.UpsertEntry(ctx, sampleEntry("e1", "2025-01-10", "7A")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.DeleteEntry(ctx, "e1"); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}

	n, err := s.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("got %d entries after delete, want 0", n)
	}

	// Absent id is a no-op, not an error.
	if err := s.DeleteEntry(ctx, "e1"); err != nil {
		t.Errorf("deleting absent id should be a no-op: %v", err)
	}
}

func TestDeleteEntries_Batch(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, id := range []string{"e1", "e2", "e3"} {
		if err := s.UpsertEntry(ctx, sampleEntry(id, "2025-01-10", "7A")); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	// Batch includes an id that no longer exists; it is skipped silently.
	if err := s.DeleteEntries(ctx, []string{"e1", "e3", "ghost"}); err != nil {
		t.Fatalf("DeleteEntries() failed: %v", err)
	}

	entries, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "e2" {
		t.Errorf("got %+v, want only e2", entries)
	}

	if err := s.DeleteEntries(ctx, nil); err != nil {
		t.Errorf("empty batch should be a no-op: %v", err)
	}
}

func TestTeacherInfo_AbsentThenSaved(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, ok, err := s.GetTeacherInfo(ctx)
	if err != nil {
		t.Fatalf("GetTeacherInfo() failed: %v", err)
	}
	if ok {
		t.Error("fresh store reported teacher info as present")
	}

	info := journal.TeacherInfo{Name: "Sigit", Subject: "Informatika", NIP: "1987"}
	if err := s.SaveTeacherInfo(ctx, info); err != nil {
		t.Fatalf("SaveTeacherInfo() failed: %v", err)
	}

	got, ok, err := s.GetTeacherInfo(ctx)
	if err != nil || !ok {
		t.Fatalf("GetTeacherInfo() = ok=%v err=%v", ok, err)
	}
	if got != info {
		t.Errorf("got %+v, want %+v", got, info)
	}

	// Saving again overwrites in place, never duplicates.
	info.Subject = "Matematika"
	if err := s.SaveTeacherInfo(ctx, info); err != nil {
		t.Fatalf("second save: %v", err)
	}
	var rows int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM teacher_config").Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("teacher_config has %d rows, want 1", rows)
	}
}

func TestSchoolInfo_RoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	info := journal.SchoolInfo{
		SchoolName:    "SMP Negeri 2",
		AcademicYear:  "2025/2026",
		PrincipalName: "Rokaliana",
		PrincipalNIP:  "1972",
		PrintLocation: "Kesugihan",
	}
	if err := s.SaveSchoolInfo(ctx, info); err != nil {
		t.Fatalf("SaveSchoolInfo() failed: %v", err)
	}

	got, ok, err := s.GetSchoolInfo(ctx)
	if err != nil || !ok {
		t.Fatalf("GetSchoolInfo() = ok=%v err=%v", ok, err)
	}
	if got != info {
		t.Errorf("got %+v, want %+v", got, info)
	}
}

func TestClearAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.UpsertEntry(ctx, sampleEntry("e1", "2025-01-10", "7A")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.SaveTeacherInfo(ctx, journal.TeacherInfo{Name: "X"}); err != nil {
		t.Fatalf("save teacher: %v", err)
	}
	if err := s.SaveSchoolInfo(ctx, journal.SchoolInfo{SchoolName: "Y"}); err != nil {
		t.Fatalf("save school: %v", err)
	}

	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll() failed: %v", err)
	}

	n, err := s.CountEntries(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("entries remain after ClearAll: %d", n)
	}
	if _, ok, _ := s.GetTeacherInfo(ctx); ok {
		t.Error("teacher info remains after ClearAll")
	}
	if _, ok, _ := s.GetSchoolInfo(ctx); ok {
		t.Error("school info remains after ClearAll")
	}
}

// hours submitted out of order are persisted in their normalized form.
func TestUpsertEntry_HoursOrderPreserved(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	e := journal.NewEntry("2025-01-10", "7A", []int{3, 1, 2}, "m", "", "", "", nil)
	if err := s.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := s.GetEntry(ctx, e.ID)
	if err != nil || !ok {
		t.Fatalf("GetEntry() = ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got.Hours, []int{1, 2, 3}) {
		t.Errorf("hours read back as %v, want [1 2 3]", got.Hours)
	}
}
