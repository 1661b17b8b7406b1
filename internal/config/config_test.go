package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jurnalguru/jurnal/internal/journal"
)

func TestLoad_FileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
database: /tmp/test-jurnal.db
locale: en
classes: [7A, 7B]
teacher:
  name: Sigit Purnama
  subject: Informatika
  nip: "1987"
school:
  schoolName: SMP Negeri 2
  academicYear: 2025/2026
  principalName: Rokaliana
  printLocation: Kesugihan
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-jurnal.db", cfg.Database)
	assert.Equal(t, language.English, cfg.Tag())
	assert.Equal(t, []string{"7A", "7B"}, cfg.Classes)
	assert.Equal(t, journal.TeacherInfo{Name: "Sigit Purnama", Subject: "Informatika", NIP: "1987"}, cfg.TeacherInfo())
	assert.Equal(t, "SMP Negeri 2", cfg.SchoolInfo().SchoolName)
	assert.Equal(t, "", cfg.SchoolInfo().PrincipalNIP)
}

func TestLoad_MissingDefaultFileYieldsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Classes, cfg.Classes)
	assert.Equal(t, "id", cfg.Locale)
	assert.NotEmpty(t, cfg.Database)
}

func TestLoad_MissingExplicitFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_PartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes: [10A]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"10A"}, cfg.Classes)
	assert.Equal(t, "id", cfg.Locale)
	assert.NotEmpty(t, cfg.Database)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classes: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAllowsClass(t *testing.T) {
	cfg := Config{Classes: []string{"7A", "7B"}}
	assert.True(t, cfg.AllowsClass("7A"))
	assert.False(t, cfg.AllowsClass("9C"))

	// Empty roster accepts any label.
	assert.True(t, Config{}.AllowsClass("anything"))
}

func TestTag_MalformedLocale(t *testing.T) {
	cfg := Config{Locale: "!!"}
	assert.Equal(t, language.Indonesian, cfg.Tag())
}

func TestSeeds_AbsentAreZero(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, journal.TeacherInfo{}, cfg.TeacherInfo())
	assert.Equal(t, journal.SchoolInfo{}, cfg.SchoolInfo())
}
