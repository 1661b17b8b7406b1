package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jurnalguru/jurnal/internal/config"
	"github.com/jurnalguru/jurnal/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Database   string // overrides the configured database path
	Yes        bool   // auto-approve destructive confirmations

	cfg       *config.Config
	confirmer Confirmer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the jurnal CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "jurnal",
		Short: "Jurnal - teaching journal",
		Long: `Jurnal keeps a teacher's daily class activity log in a local database
and exports selected entries to PDF, XLSX, or CSV with letterhead and
signature block. The full data set can be backed up to, and restored
from, a single JSON document.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to database file (overrides config)")
	cmd.PersistentFlags().BoolVarP(&opts.Yes, "yes", "y", false, "answer yes to confirmation prompts")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewCopyCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewTeacherCommand(opts))
	cmd.AddCommand(NewSchoolCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))
	cmd.AddCommand(NewWipeCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Config loads the application config once per invocation.
func (o *RootOptions) Config() (config.Config, error) {
	if o.cfg != nil {
		return *o.cfg, nil
	}
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	o.cfg = &cfg
	return cfg, nil
}

// OpenStore resolves the database path (flag beats config), makes sure
// its directory exists, and returns the shared store handle.
func (o *RootOptions) OpenStore() (*store.Store, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}

	path := o.Database
	if path == "" {
		path = cfg.Database
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
		}
	}

	slog.Debug("opening database", "path", path)
	st, err := store.Shared(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// Formatter builds the output formatter bound to the command's streams.
func (o *RootOptions) Formatter(cmd *cobra.Command) *Formatter {
	return &Formatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
