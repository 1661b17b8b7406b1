package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_Batch(t *testing.T) {
	db := testDB(t)
	a, b, c := seedThree(t, db)

	out, err := runCLI(t, db, "-y", "delete", a, c)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 entries.")

	entries := listEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, b, entries[0].ID)
}

func TestDelete_SkipsUnknownIDs(t *testing.T) {
	db := testDB(t)
	a, _, _ := seedThree(t, db)

	out, err := runCLI(t, db, "-y", "delete", a, "ffffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 entries.")
	assert.Len(t, listEntries(t, db), 2)
}

func TestDelete_NothingMatches(t *testing.T) {
	db := testDB(t)
	seedThree(t, db)

	out, err := runCLI(t, db, "-y", "delete", "ffffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to delete.")
	assert.Len(t, listEntries(t, db), 3)
}

func TestDelete_PromptDeclined(t *testing.T) {
	db := testDB(t)
	a, _, _ := seedThree(t, db)
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()
	out := &strings.Builder{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("n\n"))
	cmd.SetArgs([]string{"--db", db, "delete", a})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Len(t, listEntries(t, db), 3)
}

func TestDelete_PromptAccepted(t *testing.T) {
	db := testDB(t)
	a, _, _ := seedThree(t, db)
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()
	out := &strings.Builder{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("y\n"))
	cmd.SetArgs([]string{"--db", db, "delete", a})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "About to delete 1 entries:")
	assert.Len(t, listEntries(t, db), 2)
}
