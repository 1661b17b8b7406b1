package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	ef := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a teaching session",
		Long: `Add one journal entry. The date defaults to today; class, at least one
lesson period, and the material covered are required. Students missing
from the session are listed by name under --sick, --permitted, or
--absent; an entry with none is rendered as "Hadir Semua" on exports.`,
		Example: `  jurnal add --class 7A --hours 1,2 --material "Aljabar dasar"
  jurnal add --date 2025-01-10 --class 8B --hours 3 \
      --material "Teorema Pythagoras" --sick "Budi" --permitted "Siti"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, ef)
		},
	}

	ef.register(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, opts *RootOptions, ef *entryFlags) error {
	formatter := opts.Formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	date := ef.Date
	if date == "" {
		date = journal.Today()
	}
	if err := checkClass(cfg, ef.Class); err != nil {
		return err
	}

	e := journal.NewEntry(date, ef.Class, ef.Hours, ef.Material, ef.Obstacle, ef.FollowUp, ef.Notes, ef.attendance())
	if err := e.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid entry", err)
	}

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	if err := st.UpsertEntry(cmd.Context(), e); err != nil {
		return WrapExitError(ExitFailure, "failed to save entry", err)
	}

	formatter.VerboseLog("saved entry %s", e.ID)
	return formatter.Success(fmt.Sprintf("Added entry %s (%s, %s)", e.ID, e.Date, e.Class), e)
}
