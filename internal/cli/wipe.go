package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWipeCommand creates the wipe command.
func NewWipeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all data",
		Long: `Delete every entry and both profiles in one transaction. Asks for
confirmation unless --yes is given. Consider running backup first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWipe(cmd, opts)
		},
	}
	return cmd
}

func runWipe(cmd *cobra.Command, opts *RootOptions) error {
	formatter := opts.Formatter(cmd)
	ctx := cmd.Context()

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}
	count, err := st.CountEntries(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read database", err)
	}

	ok, err := opts.Confirmer(cmd).Confirm(PendingAction{
		Kind:    ActionWipe,
		Summary: fmt.Sprintf("About to delete all %d entries and both profiles.", count),
		Warning: "This cannot be undone.",
	})
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}

	if err := st.ClearAll(ctx); err != nil {
		return WrapExitError(ExitFailure, "failed to wipe database", err)
	}

	return formatter.Success(fmt.Sprintf("Deleted %d entries.", count), map[string]int{"deleted": count})
}
