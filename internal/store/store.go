package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (entries, teacher_config)
// 2 - Added school_config
const currentSchemaVersion = 2

// singletonKey is the fixed key both profile containers use. The
// profiles have exactly one logical row each, overwritten in place.
const singletonKey = "default"

// Store provides durable storage for journal entries and the two
// singleton profiles. Uses SQLite with WAL mode.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically.
//
// This function is idempotent - safe to call multiple times. Most
// callers want Shared instead, which memoizes the handle per path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "open database", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "connect to database", Err: err}
	}

	// SQLite only supports one writer at a time. A single connection
	// also serializes all operations, so writes to the same key are
	// applied in program order.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "apply pragmas", Err: err}
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "apply schema", Err: err}
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates containers if they don't exist and runs
// migrations. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// runMigrations applies incremental schema migrations based on
// user_version. Migrations are additive only; existing data is never
// dropped.
func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 2 {
		if err := migrateToV2(db); err != nil {
			return err
		}
		version = 2
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// migrateToV2 creates the school_config container for databases created
// before version 2. New databases get it from schema.sql; CREATE TABLE
// IF NOT EXISTS makes this a no-op for them.
func migrateToV2(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS school_config (
			id   TEXT PRIMARY KEY,
			data TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate to v2: %w", err)
	}
	return nil
}

// sharedHandle memoizes one Open per database path.
type sharedHandle struct {
	once sync.Once
	st   *Store
	err  error
}

var (
	sharedMu sync.Mutex
	shared   = make(map[string]*sharedHandle)
)

// Shared returns the process-wide store handle for the given path,
// opening it on first use. Concurrent first callers coalesce onto a
// single Open; they all receive the same handle (or the same error).
//
// The handle stays open for the process lifetime; Close on a shared
// handle is the caller's responsibility at shutdown.
func Shared(path string) (*Store, error) {
	sharedMu.Lock()
	h, ok := shared[path]
	if !ok {
		h = &sharedHandle{}
		shared[path] = h
	}
	sharedMu.Unlock()

	h.once.Do(func() {
		h.st, h.err = Open(path)
	})
	if h.err != nil {
		// Drop the failed handle so a later call can retry the open.
		sharedMu.Lock()
		if shared[path] == h {
			delete(shared, path)
		}
		sharedMu.Unlock()
	}
	return h.st, h.err
}
