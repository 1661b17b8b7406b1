package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/export"
	"github.com/jurnalguru/jurnal/internal/journal"
	"github.com/jurnalguru/jurnal/internal/store"
)

// NewExportCommand creates the export command group.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries to PDF, XLSX, or CSV",
		Long: `Export journal entries as a printable document with letterhead and
signature block. Entries are chosen either by id (--ids) or by the
same filters list takes; with neither, everything is exported. The
teacher and school profiles come from the database, falling back to
the seeds in the config file.`,
	}

	cmd.AddCommand(newExportFormatCommand(opts, "pdf"))
	cmd.AddCommand(newExportFormatCommand(opts, "xlsx"))
	cmd.AddCommand(newExportFormatCommand(opts, "csv"))
	return cmd
}

func newExportFormatCommand(opts *RootOptions, format string) *cobra.Command {
	ff := &filterFlags{}
	var (
		out  string
		ids  []string
		page string
	)

	cmd := &cobra.Command{
		Use:   format,
		Short: fmt.Sprintf("Export entries as %s", format),
		Example: fmt.Sprintf(`  jurnal export %[1]s
  jurnal export %[1]s --from 2025-01-01 --to 2025-01-31 --out januari.%[1]s`, format),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, format, ff, out, ids, page)
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to \"Jurnal Mengajar - <teacher>.<ext>\")")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "export only these entry ids")
	if format == "pdf" {
		cmd.Flags().StringVar(&page, "page", "a4", "page format (a4|folio)")
	}
	return cmd
}

func runExport(cmd *cobra.Command, opts *RootOptions, format string, ff *filterFlags, out string, ids []string, page string) error {
	formatter := opts.Formatter(cmd)
	ctx := cmd.Context()

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	st, err := opts.OpenStore()
	if err != nil {
		return err
	}

	entries, err := st.ListEntries(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load entries", err)
	}
	journal.SortCanonical(entries)

	if len(ids) > 0 {
		sel := journal.NewSelection()
		for _, ref := range ids {
			e, err := resolveEntry(ctx, st, ref)
			if err != nil {
				return err
			}
			sel.Toggle(e.ID)
		}
		entries = sel.Resolve(entries)
	} else {
		filter, err := ff.filter()
		if err != nil {
			return err
		}
		entries = filter.Apply(entries)
	}
	if len(entries) == 0 {
		return NewExitError(ExitFailure, "nothing to export: no entries match")
	}

	teacher, school, err := exportProfiles(cmd, opts, st)
	if err != nil {
		return err
	}
	tag := cfg.Tag()

	var data []byte
	switch format {
	case "pdf":
		pf, err := export.ParsePageFormat(page)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid page format", err)
		}
		data, err = export.RenderPDF(entries, teacher, school, pf, tag)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to render PDF", err)
		}
	case "xlsx":
		data, err = export.RenderXLSX(entries, teacher, school, tag)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to render XLSX", err)
		}
	case "csv":
		data, err = export.RenderCSV(entries, teacher, school, tag)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to render CSV", err)
		}
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown export format %q", format))
	}

	if out == "" {
		out = defaultExportName(teacher, format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return WrapExitError(ExitFailure, "failed to write output file", err)
	}

	formatter.VerboseLog("wrote %d bytes", len(data))
	return formatter.Success(fmt.Sprintf("Exported %d entries to %s", len(entries), out),
		map[string]any{"file": out, "entries": len(entries), "format": format})
}

// exportProfiles loads both singleton profiles, substituting the config
// file seeds for whichever is not in the database yet.
func exportProfiles(cmd *cobra.Command, opts *RootOptions, st *store.Store) (journal.TeacherInfo, journal.SchoolInfo, error) {
	cfg, err := opts.Config()
	if err != nil {
		return journal.TeacherInfo{}, journal.SchoolInfo{}, err
	}

	teacher, ok, err := st.GetTeacherInfo(cmd.Context())
	if err != nil {
		return journal.TeacherInfo{}, journal.SchoolInfo{}, WrapExitError(ExitFailure, "failed to load teacher profile", err)
	}
	if !ok {
		teacher = cfg.TeacherInfo()
	}

	school, ok, err := st.GetSchoolInfo(cmd.Context())
	if err != nil {
		return journal.TeacherInfo{}, journal.SchoolInfo{}, WrapExitError(ExitFailure, "failed to load school profile", err)
	}
	if !ok {
		school = cfg.SchoolInfo()
	}
	return teacher, school, nil
}

func defaultExportName(teacher journal.TeacherInfo, ext string) string {
	if teacher.Name == "" {
		return "Jurnal Mengajar." + ext
	}
	return fmt.Sprintf("Jurnal Mengajar - %s.%s", teacher.Name, ext)
}
