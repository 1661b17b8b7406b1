package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/export"
	"github.com/jurnalguru/jurnal/internal/journal"
)

// filterFlags holds the date-range and class flags shared by list and
// the export commands. Empty values leave the dimension unconstrained.
type filterFlags struct {
	From  string
	To    string
	Class string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&ff.From, "from", "", "earliest date to include (YYYY-MM-DD, inclusive)")
	f.StringVar(&ff.To, "to", "", "latest date to include (YYYY-MM-DD, inclusive)")
	f.StringVar(&ff.Class, "class", "", "only entries for this class")
}

func (ff *filterFlags) filter() (journal.Filter, error) {
	for _, d := range []string{ff.From, ff.To} {
		if d != "" && !journal.ValidDate(d) {
			return journal.Filter{}, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid date %q: want YYYY-MM-DD", d))
		}
	}
	return journal.Filter{StartDate: ff.From, EndDate: ff.To, Class: ff.Class}, nil
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	ff := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long: `List entries in canonical order (date ascending, first lesson period
as tie-breaker), optionally narrowed by date range and class.`,
		Example: `  jurnal list
  jurnal list --from 2025-01-01 --to 2025-01-31 --class 7A`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, ff)
		},
	}

	ff.register(cmd)
	return cmd
}

func runList(cmd *cobra.Command, opts *RootOptions, ff *filterFlags) error {
	formatter := opts.Formatter(cmd)

	filter, err := ff.filter()
	if err != nil {
		return err
	}

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	entries, err := st.ListEntries(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load entries", err)
	}
	journal.SortCanonical(entries)
	entries = filter.Apply(entries)

	if formatter.Format == "json" {
		return formatter.Success("", entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No entries found.")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCLASS\tHOURS\tMATERIAL\tATTENDANCE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			shortID(e.ID), e.Date, e.Class, export.FormatHours(e.Hours), truncate(e.Material, 40), len(e.Attendance))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(formatter.Writer, "\n%d entries\n", len(entries))
	return nil
}

// shortID abbreviates a uuid for table output. Commands accept either
// the full id or this prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate limits s to max runes; byte slicing would mangle multibyte
// characters in free-text fields.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
