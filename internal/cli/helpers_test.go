package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// runCLI executes the root command against a temp database and returns
// combined output. HOME is pinned to an empty temp dir so the default
// config path resolves to a file that does not exist and the built-in
// defaults apply, whatever ~/.jurnal/config.yaml on the host says.
func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--db", db}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "jurnal.db")
}

// listEntries fetches all entries through the CLI's JSON output.
func listEntries(t *testing.T, db string) []journal.Entry {
	t.Helper()

	out, err := runCLI(t, db, "--format", "json", "list")
	require.NoError(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   []journal.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

// mustAdd creates one entry and returns it.
func mustAdd(t *testing.T, db string, args ...string) journal.Entry {
	t.Helper()

	out, err := runCLI(t, db, append([]string{"--format", "json", "add"}, args...)...)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   journal.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data
}
