package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEditCommand creates the edit command.
func NewEditCommand(opts *RootOptions) *cobra.Command {
	ef := &entryFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing entry",
		Long: `Edit one entry in place. Only fields whose flags are given change;
everything else keeps its stored value. The id never changes. Setting
any of --sick, --permitted, or --absent replaces the whole attendance
list.`,
		Example: `  jurnal edit 0194f2ab --material "Aljabar lanjutan"
  jurnal edit 0194f2ab --hours 1,2,3 --sick "Budi,Andi"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, opts, ef, args[0])
		},
	}

	ef.register(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, opts *RootOptions, ef *entryFlags, ref string) error {
	formatter := opts.Formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	e, err := resolveEntry(cmd.Context(), st, ref)
	if err != nil {
		return err
	}

	ef.apply(cmd, &e)
	if cmd.Flags().Changed("class") {
		if err := checkClass(cfg, e.Class); err != nil {
			return err
		}
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid entry", err)
	}

	if err := st.UpsertEntry(cmd.Context(), e); err != nil {
		return WrapExitError(ExitFailure, "failed to save entry", err)
	}

	return formatter.Success(fmt.Sprintf("Updated entry %s (%s, %s)", e.ID, e.Date, e.Class), e)
}
