package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewCopyCommand creates the copy command.
func NewCopyCommand(opts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Duplicate an entry under a fresh id",
		Long: `Copy one entry to a new date (today unless --date is given). The copy
gets a fresh id and fresh attendance record ids; the source entry is
untouched. Useful for parallel classes covering the same material.`,
		Example: `  jurnal copy 0194f2ab
  jurnal copy 0194f2ab --date 2025-01-17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, opts, args[0], date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date for the copy (YYYY-MM-DD, defaults to today)")
	return cmd
}

func runCopy(cmd *cobra.Command, opts *RootOptions, ref, date string) error {
	formatter := opts.Formatter(cmd)

	if date == "" {
		date = journal.Today()
	}
	if !journal.ValidDate(date) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid date %q: want YYYY-MM-DD", date))
	}

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	src, err := resolveEntry(cmd.Context(), st, ref)
	if err != nil {
		return err
	}

	dup := src.Copy(date)
	if err := st.UpsertEntry(cmd.Context(), dup); err != nil {
		return WrapExitError(ExitFailure, "failed to save entry", err)
	}

	formatter.VerboseLog("copied %s to %s", src.ID, dup.ID)
	return formatter.Success(fmt.Sprintf("Copied entry %s to %s (%s)", shortID(src.ID), dup.ID, dup.Date), dup)
}
