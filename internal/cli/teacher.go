package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewTeacherCommand creates the teacher command group.
func NewTeacherCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "Show or update the teacher profile",
		Long: `The teacher profile is a singleton: name, subject, and NIP (employee
id). It appears on the letterhead and signature block of every export.
Without a subcommand the current profile is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeacherShow(cmd, opts)
		},
	}

	cmd.AddCommand(newTeacherSetCommand(opts))
	return cmd
}

func runTeacherShow(cmd *cobra.Command, opts *RootOptions) error {
	formatter := opts.Formatter(cmd)

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	info, ok, err := st.GetTeacherInfo(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load teacher profile", err)
	}
	if !ok {
		return formatter.Success("No teacher profile saved yet. Use 'jurnal teacher set'.", journal.TeacherInfo{})
	}

	text := fmt.Sprintf("Name:    %s\nSubject: %s\nNIP:     %s", info.Name, info.Subject, info.NIP)
	return formatter.Success(text, info)
}

func newTeacherSetCommand(opts *RootOptions) *cobra.Command {
	var (
		name    string
		subject string
		nip     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the teacher profile",
		Long: `Update the teacher profile. Only fields whose flags are given change;
the rest keep their saved values. NIP may be blank.`,
		Example: `  jurnal teacher set --name "Siti Rahayu, S.Pd." --subject Matematika
  jurnal teacher set --nip 198501012010012001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.OpenStore()
			if err != nil {
				return err
			}

			info, _, err := st.GetTeacherInfo(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to load teacher profile", err)
			}

			f := cmd.Flags()
			if f.Changed("name") {
				info.Name = name
			}
			if f.Changed("subject") {
				info.Subject = subject
			}
			if f.Changed("nip") {
				info.NIP = nip
			}

			if err := st.SaveTeacherInfo(cmd.Context(), info); err != nil {
				return WrapExitError(ExitFailure, "failed to save teacher profile", err)
			}
			return opts.Formatter(cmd).Success("Teacher profile saved.", info)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "teacher name as printed on documents")
	cmd.Flags().StringVar(&subject, "subject", "", "subject taught")
	cmd.Flags().StringVar(&nip, "nip", "", "employee id (NIP), may be blank")
	return cmd
}
