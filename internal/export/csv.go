package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/language"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// RenderCSV renders the entries as a flat UTF-8 CSV table with the same
// logical content as the other adapters: letterhead rows, the header
// row, one row per entry, and the signature rows. Entries must already
// be in canonical order.
func RenderCSV(entries []journal.Entry, teacher journal.TeacherInfo, school journal.SchoolInfo, tag language.Tag) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{titleText},
		{school.SchoolName},
		{academicYearPrefix + school.AcademicYear},
		{},
		{teacherNameLabel, ": " + teacher.Name},
		{subjectLabel, ": " + teacher.Subject},
		{},
		TableHeaders,
	}
	for i, e := range entries {
		records = append(records, Row(e, i+1, tag))
	}

	sigDate := SignatureDate(entries)
	place := fmt.Sprintf("%s, %s", school.PrintLocation, FormatSignatureDate(sigDate, tag))
	records = append(records,
		[]string{},
		[]string{acknowledgedLabel, "", "", "", "", "", "", place},
		[]string{principalLabel, "", "", "", "", "", "", teacherLabel},
		[]string{},
		[]string{},
		[]string{},
		[]string{school.PrincipalName, "", "", "", "", "", "", teacher.Name},
		[]string{nipLine(school.PrincipalNIP), "", "", "", "", "", "", nipLine(teacher.NIP)},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("render csv: %w", err)
	}
	return buf.Bytes(), nil
}
