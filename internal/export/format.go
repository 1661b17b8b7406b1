package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// PageFormat selects the paper size of the printable document.
type PageFormat string

const (
	// PageA4 is ISO A4 portrait, 210x297 mm.
	PageA4 PageFormat = "A4"
	// PageFolio is F4/Folio portrait, 215x330 mm, the size Indonesian
	// schools commonly print official documents on.
	PageFolio PageFormat = "Folio"
)

// ParsePageFormat resolves a user-supplied page format name.
func ParsePageFormat(s string) (PageFormat, error) {
	switch strings.ToLower(s) {
	case "a4":
		return PageA4, nil
	case "folio", "f4":
		return PageFolio, nil
	}
	return "", fmt.Errorf("unknown page format %q: want A4 or Folio", s)
}

// Fixed document labels. The journal is an Indonesian school document;
// only date names vary by locale.
const (
	titleText          = "JURNAL KEGIATAN GURU"
	academicYearPrefix = "TAHUN AJARAN "
	teacherNameLabel   = "NAMA GURU"
	subjectLabel       = "MATA PELAJARAN"
	acknowledgedLabel  = "Mengetahui"
	principalLabel     = "Kepala Sekolah"
	teacherLabel       = "Guru Mata Pelajaran"
	nipPrefix          = "NIP "
	allPresentText     = "Hadir Semua"
)

// TableHeaders are the nine column headings of the journal table.
var TableHeaders = []string{
	"NO", "HARI, TANGGAL", "KELAS", "JAM KE", "MATERI/KEGIATAN",
	"HAMBATAN", "TINDAK LANJUT", "KEHADIRAN SISWA", "KETERANGAN",
}

// dateNames carries the weekday and month names of one locale.
type dateNames struct {
	days   [7]string  // indexed by time.Weekday (Sunday = 0)
	months [12]string // indexed by time.Month - 1
}

var dateLocales = map[language.Tag]dateNames{
	language.Indonesian: {
		days:   [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
		months: [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	},
	language.English: {
		days:   [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	},
}

// DefaultLocale is the locale of the printed journal.
var DefaultLocale = language.Indonesian

// localeNames matches the tag against the known locales, falling back
// to the default when nothing fits.
func localeNames(tag language.Tag) dateNames {
	if n, ok := dateLocales[tag]; ok {
		return n
	}
	tags := make([]language.Tag, 0, len(dateLocales))
	tags = append(tags, DefaultLocale)
	for t := range dateLocales {
		if t != DefaultLocale {
			tags = append(tags, t)
		}
	}
	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf == language.No {
		return dateLocales[DefaultLocale]
	}
	return dateLocales[tags[idx]]
}

// FormatLongDate renders a YYYY-MM-DD date as a long-form localized
// date with weekday, e.g. "Senin, 5 Januari 2025". Dates are parsed
// UTC-anchored so the rendered day never drifts across timezones.
// Malformed dates render as-is.
func FormatLongDate(date string, tag language.Tag) string {
	t, err := time.ParseInLocation(journal.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	n := localeNames(tag)
	return fmt.Sprintf("%s, %d %s %d", n.days[t.Weekday()], t.Day(), n.months[t.Month()-1], t.Year())
}

// FormatSignatureDate renders a date without the weekday,
// e.g. "5 Januari 2025". Used next to the print location in the
// signature block.
func FormatSignatureDate(date string, tag language.Tag) string {
	t, err := time.ParseInLocation(journal.DateLayout, date, time.UTC)
	if err != nil {
		return date
	}
	n := localeNames(tag)
	return fmt.Sprintf("%d %s %d", t.Day(), n.months[t.Month()-1], t.Year())
}

// FormatHours renders the lesson periods as "1, 2, 3".
func FormatHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = strconv.Itoa(h)
	}
	return strings.Join(parts, ", ")
}

// SummarizeAttendance groups absent students by status into the printed
// form, one status per line:
//
//	S: Budi, Sari
//	I: Andi
//	A: Rina
//
// Zero records means every student was present and yields the
// "Hadir Semua" sentinel.
func SummarizeAttendance(records []journal.AttendanceRecord) string {
	if len(records) == 0 {
		return allPresentText
	}

	byStatus := map[journal.AttendanceStatus][]string{}
	for _, r := range records {
		byStatus[r.Status] = append(byStatus[r.Status], r.Name)
	}

	var parts []string
	for _, status := range []journal.AttendanceStatus{journal.StatusSick, journal.StatusPermitted, journal.StatusAbsent} {
		if names := byStatus[status]; len(names) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", status, strings.Join(names, ", ")))
		}
	}
	return strings.Join(parts, "\n")
}

// Row renders one entry as the nine table cells, numbered from 1.
func Row(e journal.Entry, no int, tag language.Tag) []string {
	return []string{
		strconv.Itoa(no),
		FormatLongDate(e.Date, tag),
		e.Class,
		FormatHours(e.Hours),
		e.Material,
		e.Obstacle,
		e.FollowUp,
		SummarizeAttendance(e.Attendance),
		e.Notes,
	}
}

// SignatureDate picks the date shown in the signature block: the latest
// entry's date, or today when nothing is selected. Callers pass entries
// in canonical order, so the latest is the last.
func SignatureDate(entries []journal.Entry) string {
	if len(entries) == 0 {
		return journal.Today()
	}
	return entries[len(entries)-1].Date
}

// nipLine renders the "NIP <id>" line, empty when the id is blank.
func nipLine(nip string) string {
	if nip == "" {
		return ""
	}
	return nipPrefix + nip
}
