// Package config loads the optional YAML application config: where the
// database lives, the document locale, the class roster offered by the
// UI, and seed profiles applied when the singletons are still absent.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// Config is the application configuration. Every field is optional; the
// zero file (or no file at all) yields Default().
type Config struct {
	// Database is the path of the SQLite database file.
	Database string `yaml:"database"`

	// Locale is a BCP 47 tag selecting the date names on exported
	// documents. Defaults to Indonesian.
	Locale string `yaml:"locale"`

	// Classes is the roster of class labels the UI offers and accepts.
	// Empty means any label is accepted. The storage layer never
	// enforces this.
	Classes []string `yaml:"classes"`

	// Teacher and School seed the singleton profiles when the store
	// has none yet. They never overwrite saved profiles.
	Teacher *TeacherSeed `yaml:"teacher,omitempty"`
	School  *SchoolSeed  `yaml:"school,omitempty"`
}

// TeacherSeed mirrors journal.TeacherInfo with YAML field names.
type TeacherSeed struct {
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
	NIP     string `yaml:"nip"`
}

// SchoolSeed mirrors journal.SchoolInfo with YAML field names.
type SchoolSeed struct {
	SchoolName    string `yaml:"schoolName"`
	AcademicYear  string `yaml:"academicYear"`
	PrincipalName string `yaml:"principalName"`
	PrincipalNIP  string `yaml:"principalNip"`
	PrintLocation string `yaml:"printLocation"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Database: DefaultDatabasePath(),
		Locale:   "id",
		Classes: []string{
			"7A", "7B", "7C", "8A", "8B", "8C", "9A", "9B", "9C",
		},
	}
}

// DefaultDatabasePath places the database under the user's home
// directory, falling back to the working directory when home is
// unavailable.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "jurnal.db"
	}
	return filepath.Join(home, ".jurnal", "jurnal.db")
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".jurnal", "config.yaml")
}

// Load reads the config file at path, or DefaultPath() when path is
// empty. A missing file is not an error: Default() is returned. Fields
// left empty in the file fall back to their defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabasePath()
	}
	if cfg.Locale == "" {
		cfg.Locale = "id"
	}
	return cfg, nil
}

// Tag parses the configured locale, falling back to Indonesian on a
// malformed tag.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Indonesian
	}
	return tag
}

// AllowsClass reports whether the roster accepts the label. An empty
// roster accepts everything.
func (c Config) AllowsClass(class string) bool {
	return len(c.Classes) == 0 || slices.Contains(c.Classes, class)
}

// TeacherInfo converts the seed, or returns the zero profile when no
// seed is configured.
func (c Config) TeacherInfo() journal.TeacherInfo {
	if c.Teacher == nil {
		return journal.TeacherInfo{}
	}
	return journal.TeacherInfo{Name: c.Teacher.Name, Subject: c.Teacher.Subject, NIP: c.Teacher.NIP}
}

// SchoolInfo converts the seed, or returns the zero profile when no
// seed is configured.
func (c Config) SchoolInfo() journal.SchoolInfo {
	if c.School == nil {
		return journal.SchoolInfo{}
	}
	return journal.SchoolInfo{
		SchoolName:    c.School.SchoolName,
		AcademicYear:  c.School.AcademicYear,
		PrincipalName: c.School.PrincipalName,
		PrincipalNIP:  c.School.PrincipalNIP,
		PrintLocation: c.School.PrintLocation,
	}
}
