package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurnalguru/jurnal/internal/journal"
)

func TestBackupRestore_RoundTrip(t *testing.T) {
	db := testDB(t)
	seedThree(t, db)
	_, err := runCLI(t, db, "teacher", "set", "--name", "Siti", "--subject", "Matematika")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "backup.json")
	out, err := runCLI(t, db, "backup", "--out", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up 3 entries")

	before := listEntries(t, db)

	_, err = runCLI(t, db, "-y", "wipe")
	require.NoError(t, err)
	require.Empty(t, listEntries(t, db))

	out, err = runCLI(t, db, "-y", "restore", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Restored 3 entries")

	assert.Equal(t, before, listEntries(t, db))
	assert.Equal(t, "Siti", teacherProfile(t, db).Name)
}

func TestBackup_DocumentShape(t *testing.T) {
	db := testDB(t)
	seedThree(t, db)

	file := filepath.Join(t.TempDir(), "backup.json")
	_, err := runCLI(t, db, "backup", "--out", file)
	require.NoError(t, err)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)

	var doc journal.Backup
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Entries, 3)
}

func TestRestore_RejectsMalformedDocument(t *testing.T) {
	db := testDB(t)
	seedThree(t, db)

	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"entries": "not-a-list"}`), 0o644))

	_, err := runCLI(t, db, "-y", "restore", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup rejected")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// Validation failed before anything was touched.
	assert.Len(t, listEntries(t, db), 3)
}

func TestRestore_MissingFile(t *testing.T) {
	_, err := runCLI(t, testDB(t), "-y", "restore", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestWipe(t *testing.T) {
	db := testDB(t)
	seedThree(t, db)

	out, err := runCLI(t, db, "-y", "wipe")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 3 entries.")
	assert.Empty(t, listEntries(t, db))
}
