package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jurnalguru/jurnal/internal/journal"
	"github.com/jurnalguru/jurnal/internal/store"
)

// resolveEntry finds the entry matching an id or a unique id prefix, so
// the abbreviated ids printed by list can be used on the command line.
func resolveEntry(ctx context.Context, st *store.Store, ref string) (journal.Entry, error) {
	e, ok, err := st.GetEntry(ctx, ref)
	if err != nil {
		return journal.Entry{}, WrapExitError(ExitFailure, "failed to load entry", err)
	}
	if ok {
		return e, nil
	}

	entries, err := st.ListEntries(ctx)
	if err != nil {
		return journal.Entry{}, WrapExitError(ExitFailure, "failed to load entries", err)
	}

	var matches []journal.Entry
	for _, e := range entries {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return journal.Entry{}, NewExitError(ExitCommandError, fmt.Sprintf("no entry with id %q", ref))
	case 1:
		return matches[0], nil
	default:
		return journal.Entry{}, NewExitError(ExitCommandError,
			fmt.Sprintf("id %q is ambiguous: matches %d entries", ref, len(matches)))
	}
}
