package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more entries",
		Long: `Delete the named entries in a single atomic batch: either all of them
are removed or, on failure, none are. Ids that no longer exist are
skipped silently. Asks for confirmation unless --yes is given.`,
		Example: `  jurnal delete 0194f2ab
  jurnal delete -y 0194f2ab 0194f3c1 0194f4d8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, opts, args)
		},
	}
	return cmd
}

func runDelete(cmd *cobra.Command, opts *RootOptions, refs []string) error {
	formatter := opts.Formatter(cmd)

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	entries, err := st.ListEntries(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load entries", err)
	}

	// A selection prunes refs that resolve to nothing and orders the
	// survivors canonically, so the confirmation lists real targets.
	sel := journal.NewSelection()
	for _, ref := range refs {
		matched := false
		for _, e := range entries {
			if e.ID == ref || (len(ref) >= 8 && strings.HasPrefix(e.ID, ref)) {
				sel.Toggle(e.ID)
				matched = true
				break
			}
		}
		if !matched {
			formatter.VerboseLog("skipping unknown id %s", ref)
		}
	}

	targets := sel.Resolve(entries)
	if len(targets) == 0 {
		return formatter.Success("Nothing to delete.", map[string]int{"deleted": 0})
	}

	affected := make([]string, len(targets))
	for i, e := range targets {
		affected[i] = fmt.Sprintf("%s  %s  %s", shortID(e.ID), e.Date, e.Class)
	}
	kind := ActionDelete
	if len(targets) > 1 {
		kind = ActionDeleteBatch
	}
	ok, err := opts.Confirmer(cmd).Confirm(PendingAction{
		Kind:     kind,
		Summary:  fmt.Sprintf("About to delete %d entries:", len(targets)),
		Affected: affected,
	})
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}

	ids := make([]string, len(targets))
	for i, e := range targets {
		ids[i] = e.ID
	}
	if err := st.DeleteEntries(cmd.Context(), ids); err != nil {
		return WrapExitError(ExitFailure, "failed to delete entries", err)
	}

	return formatter.Success(fmt.Sprintf("Deleted %d entries.", len(ids)), map[string]any{"deleted": len(ids), "ids": ids})
}
