package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurnal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurnal.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	tables := []string{"entries", "teacher_config", "school_config"}
	for _, table := range tables {
		var name string
		err := s.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("container %q not found after idempotent opens: %v", table, err)
		}
	}
}

func TestOpen_SetsSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurnal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("query user_version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, currentSchemaVersion)
	}
}

// A version-1 database (no school_config) must gain the missing
// container on open without losing existing rows.
func TestOpen_MigratesV1Database(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurnal.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	// Wind the database back to version 1.
	if _, err := s.db.Exec("DROP TABLE school_config"); err != nil {
		t.Fatalf("drop school_config: %v", err)
	}
	if _, err := s.db.Exec("PRAGMA user_version = 1"); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO entries (id, date, class, hours, material) VALUES ('e1', '2025-01-10', '7A', '[1]', 'm')`,
	); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	var name string
	if err := s2.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='school_config'",
	).Scan(&name); err != nil {
		t.Errorf("school_config not created by migration: %v", err)
	}

	var count int
	if err := s2.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 1 {
		t.Errorf("migration dropped data: %d entries, want 1", count)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/jurnal.db")
	if err == nil {
		t.Fatal("expected error for invalid path, got nil")
	}
	if !IsStorageError(err) {
		t.Errorf("want StorageError, got %T: %v", err, err)
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	if err := s.Close(); err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestShared_CoalescesConcurrentOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jurnal.db")

	const callers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		handles = make(map[*Store]struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := Shared(path)
			if err != nil {
				t.Errorf("Shared() failed: %v", err)
				return
			}
			mu.Lock()
			handles[s] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(handles) != 1 {
		t.Errorf("concurrent Shared() produced %d handles, want 1", len(handles))
	}
}

func TestShared_RetriesAfterFailedOpen(t *testing.T) {
	// First open against a bad path fails and must not poison the cache.
	bad := "/nonexistent/dir/jurnal.db"
	if _, err := Shared(bad); err == nil {
		t.Fatal("expected error for invalid path")
	}
	if _, err := Shared(bad); err == nil {
		t.Fatal("expected error on retry as well")
	}

	good := filepath.Join(t.TempDir(), "jurnal.db")
	s, err := Shared(good)
	if err != nil {
		t.Fatalf("Shared() on good path failed: %v", err)
	}
	if s == nil {
		t.Fatal("Shared() returned nil store")
	}
}
