package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// NewSchoolCommand creates the school command group.
func NewSchoolCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "school",
		Short: "Show or update the school profile",
		Long: `The school profile is a singleton: school name, academic year,
principal, and the location printed next to the signature date.
Without a subcommand the current profile is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchoolShow(cmd, opts)
		},
	}

	cmd.AddCommand(newSchoolSetCommand(opts))
	return cmd
}

func runSchoolShow(cmd *cobra.Command, opts *RootOptions) error {
	formatter := opts.Formatter(cmd)

	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	info, ok, err := st.GetSchoolInfo(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load school profile", err)
	}
	if !ok {
		return formatter.Success("No school profile saved yet. Use 'jurnal school set'.", journal.SchoolInfo{})
	}

	text := fmt.Sprintf("School:         %s\nAcademic year:  %s\nPrincipal:      %s\nPrincipal NIP:  %s\nPrint location: %s",
		info.SchoolName, info.AcademicYear, info.PrincipalName, info.PrincipalNIP, info.PrintLocation)
	return formatter.Success(text, info)
}

func newSchoolSetCommand(opts *RootOptions) *cobra.Command {
	var (
		name         string
		year         string
		principal    string
		principalNIP string
		location     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the school profile",
		Long: `Update the school profile. Only fields whose flags are given change;
the rest keep their saved values.`,
		Example: `  jurnal school set --name "SMP Negeri 1 Bandung" --year 2024/2025
  jurnal school set --principal "Drs. Ahmad Hidayat" --location Bandung`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.OpenStore()
			if err != nil {
				return err
			}

			info, _, err := st.GetSchoolInfo(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "failed to load school profile", err)
			}

			f := cmd.Flags()
			if f.Changed("name") {
				info.SchoolName = name
			}
			if f.Changed("year") {
				info.AcademicYear = year
			}
			if f.Changed("principal") {
				info.PrincipalName = principal
			}
			if f.Changed("principal-nip") {
				info.PrincipalNIP = principalNIP
			}
			if f.Changed("location") {
				info.PrintLocation = location
			}

			if err := st.SaveSchoolInfo(cmd.Context(), info); err != nil {
				return WrapExitError(ExitFailure, "failed to save school profile", err)
			}
			return opts.Formatter(cmd).Success("School profile saved.", info)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "school name as printed on the letterhead")
	cmd.Flags().StringVar(&year, "year", "", "academic year, e.g. 2024/2025")
	cmd.Flags().StringVar(&principal, "principal", "", "principal name")
	cmd.Flags().StringVar(&principalNIP, "principal-nip", "", "principal employee id (NIP), may be blank")
	cmd.Flags().StringVar(&location, "location", "", "city printed next to the signature date")
	return cmd
}
