package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"

	"github.com/jurnalguru/jurnal/internal/journal"
)

const (
	pdfMargin     = 10.0 // page margin, mm
	pdfLineHeight = 4.0  // body line height, mm
	footerReserve = 65.0 // space kept free for the signature block, mm
	footerOffset  = 50.0 // signature block starts this far above the page bottom
)

// column widths in mm at A4; scaled proportionally for Folio.
var pdfColWidths = []float64{8, 28, 12, 12, 35, 25, 25, 27, 18}

// centered columns: NO, KELAS, JAM KE.
var pdfColCentered = map[int]bool{0: true, 2: true, 3: true}

// RenderPDF renders the entries as a print-ready paginated document:
// letterhead on the first page, the journal table with its header row
// repeated on every page, and the signature block on every page.
// Entries must already be in canonical order.
func RenderPDF(entries []journal.Entry, teacher journal.TeacherInfo, school journal.SchoolInfo, page PageFormat, tag language.Tag) ([]byte, error) {
	var pdf *fpdf.Fpdf
	switch page {
	case PageFolio:
		pdf = fpdf.NewCustom(&fpdf.InitType{
			OrientationStr: "P",
			UnitStr:        "mm",
			Size:           fpdf.SizeType{Wd: 215, Ht: 330},
		})
	case PageA4:
		pdf = fpdf.New("P", "mm", "A4", "")
	default:
		return nil, fmt.Errorf("render pdf: unknown page format %q", page)
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	sigDate := SignatureDate(entries)

	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, footerReserve)
	pdf.SetFooterFunc(func() {
		drawSignatureFooter(pdf, tr, teacher, school, sigDate, tag)
	})
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Letterhead, first page only.
	pdf.SetFont("Times", "B", 14)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(pageW-2*pdfMargin, 6, tr(titleText), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 12)
	pdf.CellFormat(pageW-2*pdfMargin, 6, tr(school.SchoolName), "", 1, "C", false, 0, "")
	pdf.CellFormat(pageW-2*pdfMargin, 6, tr(academicYearPrefix+school.AcademicYear), "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.Text(15, 31, tr(fmt.Sprintf("%s : %s", teacherNameLabel, teacher.Name)))
	pdf.Text(15, 36, tr(fmt.Sprintf("%s : %s", subjectLabel, teacher.Subject)))

	widths := scaleWidths(pageW - 2*pdfMargin)

	pdf.SetY(40)
	drawTableHeader(pdf, tr, widths)

	for i, e := range entries {
		cells := Row(e, i+1, tag)
		rowH := rowHeight(pdf, cells, widths)

		if pdf.GetY()+rowH > pageH-footerReserve {
			pdf.AddPage()
			pdf.SetY(pdfMargin)
			drawTableHeader(pdf, tr, widths)
		}
		drawTableRow(pdf, tr, cells, widths, rowH)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// scaleWidths stretches the A4 column widths to the usable width of the
// current page size.
func scaleWidths(usable float64) []float64 {
	var total float64
	for _, w := range pdfColWidths {
		total += w
	}
	out := make([]float64, len(pdfColWidths))
	for i, w := range pdfColWidths {
		out[i] = w * usable / total
	}
	return out
}

func drawTableHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64) {
	pdf.SetFont("Times", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetX(pdfMargin)
	for i, h := range TableHeaders {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Times", "", 8)
}

// rowHeight computes the height the tallest cell of the row needs.
func rowHeight(pdf *fpdf.Fpdf, cells []string, widths []float64) float64 {
	maxLines := 1
	for i, text := range cells {
		// SplitText wraps the way MultiCell will; keep 2mm slack for
		// the cell's inner margins.
		lines := pdf.SplitText(text, widths[i]-2)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	return float64(maxLines)*pdfLineHeight + 2
}

func drawTableRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, widths []float64, rowH float64) {
	y := pdf.GetY()
	x := pdfMargin
	for i, text := range cells {
		pdf.Rect(x, y, widths[i], rowH, "D")

		align := "L"
		if pdfColCentered[i] {
			align = "C"
		}
		// Center the text block vertically inside the cell.
		lines := pdf.SplitText(text, widths[i]-2)
		startY := y + (rowH-float64(len(lines))*pdfLineHeight)/2
		pdf.SetXY(x, startY)
		pdf.MultiCell(widths[i], pdfLineHeight, tr(text), "", align, false)

		x += widths[i]
	}
	pdf.SetXY(pdfMargin, y+rowH)
}

// drawSignatureFooter draws the signature block: acknowledgment and
// principal on the left, print location with the signature date and the
// teacher on the right. Drawn on every page.
func drawSignatureFooter(pdf *fpdf.Fpdf, tr func(string) string, teacher journal.TeacherInfo, school journal.SchoolInfo, sigDate string, tag language.Tag) {
	pageW, pageH := pdf.GetPageSize()
	y := pageH - footerOffset
	leftX := 20.0
	rightX := pageW - 20.0

	pdf.SetFont("Times", "", 10)

	textRight := func(s string, ty float64) {
		pdf.Text(rightX-pdf.GetStringWidth(s), ty, s)
	}

	pdf.Text(leftX, y, tr(acknowledgedLabel))
	textRight(tr(fmt.Sprintf("%s, %s", school.PrintLocation, FormatSignatureDate(sigDate, tag))), y)
	pdf.Text(leftX, y+5, tr(principalLabel))
	textRight(tr(teacherLabel), y+5)

	pdf.SetFont("Times", "B", 10)
	pdf.Text(leftX, y+25, tr(school.PrincipalName))
	textRight(tr(teacher.Name), y+25)

	pdf.SetFont("Times", "", 10)
	if line := nipLine(school.PrincipalNIP); line != "" {
		pdf.Text(leftX, y+30, tr(line))
	}
	if line := nipLine(teacher.NIP); line != "" {
		textRight(tr(line), y+30)
	}
}
