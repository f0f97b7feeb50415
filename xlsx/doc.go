// Package xlsx converts the worksheets of an XLSX workbook to CSV.
//
// A workbook is read with Open or OpenFile, which index the archive with
// package zipread and decompress every part. The result is a Document
// carrying the sheet list from the workbook manifest together with the
// shared string and style tables. Worksheets are parsed only when converted:
//
//	doc, err := xlsx.OpenFile("report.xlsx")
//	if err != nil {
//		log.Fatal(err)
//	}
//	sheets, err := doc.CSV()
//
// Cell values are resolved in a fixed order. Shared strings come first, then
// cells whose style marks them as a date (rendered DD/MM/YYYY) or a duration
// (rendered like "1d2h30m"), and finally the raw value.
package xlsx
