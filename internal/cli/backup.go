package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/backup"
	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewBackupCommand creates the backup command.
func NewBackupCommand(opts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a full JSON backup",
		Long: `Write every entry plus both profiles to a single JSON document. The
document is the only interchange format; restore accepts nothing else.`,
		Example: `  jurnal backup
  jurnal backup --out /mnt/usb/jurnal.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(cmd, opts, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to a dated name in the current directory)")
	return cmd
}

func runBackup(cmd *cobra.Command, opts *RootOptions, out string) error {
	formatter := opts.Formatter(cmd)

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	snap, err := backup.ExportSnapshot(cmd.Context(), st)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read database", err)
	}
	data, err := backup.Marshal(snap)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to encode backup", err)
	}

	if out == "" {
		out = backup.DefaultFilename(journal.Today())
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return WrapExitError(ExitFailure, "failed to write backup file", err)
	}

	return formatter.Success(fmt.Sprintf("Backed up %d entries to %s", len(snap.Entries), out),
		map[string]any{"file": out, "entries": len(snap.Entries)})
}
