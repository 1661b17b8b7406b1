package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/backup"
)

// NewRestoreCommand creates the restore command.
func NewRestoreCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all data from a JSON backup",
		Long: `Validate a backup document and load it, replacing everything in the
database: all entries and both profiles. A document that fails
validation is rejected before anything is touched. Asks for
confirmation unless --yes is given.`,
		Example: `  jurnal restore "Jurnal Backup - 2025-01-10.json"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, opts, args[0])
		},
	}
	return cmd
}

func runRestore(cmd *cobra.Command, opts *RootOptions, path string) error {
	formatter := opts.Formatter(cmd)
	ctx := cmd.Context()

	raw, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read backup file", err)
	}

	snap, err := backup.ValidateSnapshot(raw)
	if err != nil {
		return WrapExitError(ExitFailure, "backup rejected", err)
	}

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}
	current, err := st.CountEntries(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read database", err)
	}

	ok, err := opts.Confirmer(cmd).Confirm(PendingAction{
		Kind:    ActionRestore,
		Summary: fmt.Sprintf("About to replace %d existing entries with %d from %s.", current, len(snap.Entries), path),
		Warning: "This cannot be undone. Current data will be lost.",
	})
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}

	if err := backup.RestoreSnapshot(ctx, st, snap); err != nil {
		if backup.IsRestoreError(err) {
			// The wipe already happened; the database holds a partial
			// load. The count in the error says how far it got.
			return WrapExitError(ExitFailure, "restore incomplete, database is partial", err)
		}
		return WrapExitError(ExitFailure, "restore failed, database unchanged", err)
	}

	return formatter.Success(fmt.Sprintf("Restored %d entries from %s", len(snap.Entries), path),
		map[string]any{"file": path, "entries": len(snap.Entries)})
}
