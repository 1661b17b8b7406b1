package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"

	"github.com/jurnalguru/jurnal/internal/journal"
)

const sheetName = "Jurnal"

// xlsxColWidths mirrors the printed column proportions, in characters.
var xlsxColWidths = []float64{5, 25, 10, 10, 40, 40, 40, 30, 30}

// RenderXLSX renders the entries as a spreadsheet workbook with the
// same logical content as the printable document: letterhead rows, one
// row per entry, and the signature rows. Entries must already be in
// canonical order.
func RenderXLSX(entries []journal.Entry, teacher journal.TeacherInfo, school journal.SchoolInfo, tag language.Tag) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	setRow := func(row int, values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheetName, cell, &values)
	}

	// Letterhead: three merged title rows, a blank row, two teacher
	// lines, a blank row.
	if err := setRow(1, titleText); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := setRow(2, school.SchoolName); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := setRow(3, academicYearPrefix+school.AcademicYear); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := setRow(5, teacherNameLabel, ": "+teacher.Name); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	if err := setRow(6, subjectLabel, ": "+teacher.Subject); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	headers := make([]any, len(TableHeaders))
	for i, h := range TableHeaders {
		headers[i] = h
	}
	if err := setRow(8, headers...); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	const firstDataRow = 9
	for i, e := range entries {
		cells := Row(e, i+1, tag)
		values := make([]any, len(cells))
		for j, c := range cells {
			values[j] = c
		}
		values[0] = i + 1 // NO as a number, not text
		if err := setRow(firstDataRow+i, values...); err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	}

	// Signature block: location+date and roles on the right (column H),
	// acknowledgment and principal on the left, names after a gap for
	// the handwritten signatures.
	sigDate := SignatureDate(entries)
	sigRow := firstDataRow + len(entries) + 1
	place := fmt.Sprintf("%s, %s", school.PrintLocation, FormatSignatureDate(sigDate, tag))
	sigRows := map[int][]any{
		sigRow:     {acknowledgedLabel, "", "", "", "", "", "", place},
		sigRow + 1: {principalLabel, "", "", "", "", "", "", teacherLabel},
		sigRow + 5: {school.PrincipalName, "", "", "", "", "", "", teacher.Name},
		sigRow + 6: {nipLine(school.PrincipalNIP), "", "", "", "", "", "", nipLine(teacher.NIP)},
	}
	for row := sigRow; row <= sigRow+6; row++ {
		values, ok := sigRows[row]
		if !ok {
			continue
		}
		if err := setRow(row, values...); err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	}

	for i, w := range xlsxColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	}

	// Title rows span the full table width; the right-hand signature
	// cells span the two rightmost columns.
	merges := [][2]string{
		{"A1", "I1"},
		{"A2", "I2"},
		{"A3", "I3"},
		{cell(8, sigRow), cell(9, sigRow)},
		{cell(8, sigRow+1), cell(9, sigRow+1)},
		{cell(8, sigRow+5), cell(9, sigRow+5)},
		{cell(8, sigRow+6), cell(9, sigRow+6)},
	}
	for _, m := range merges {
		if err := f.MergeCell(sheetName, m[0], m[1]); err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// cell returns the A1-style name for 1-based column and row.
func cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Coordinates are computed, never user input.
		panic(err)
	}
	return name
}
