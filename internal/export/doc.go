// Package export renders a selected, ordered list of journal entries
// plus the two profiles into downloadable artifacts: a print-ready
// paginated PDF, an XLSX workbook, or a flat CSV table.
//
// Every adapter produces the same logical content: the letterhead
// (journal title, school name, academic year, teacher lines), one table
// row per entry, and the signature block (principal and teacher, with
// the print location and the latest entry's date in long-form localized
// style).
//
// The adapters are pure with respect to the store: they consume
// already-validated entries in the order given (callers sort
// canonically) and return opaque bytes. Document labels are Indonesian,
// as on the printed journal; day and month names come from a locale
// table keyed by language.Tag.
package export
