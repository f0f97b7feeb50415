// Package xlsxcsv provides a fluent API for converting the worksheets of an
// XLSX workbook to CSV.
//
// Basic usage:
//
//	sheets, err := xlsxcsv.Open("report.xlsx").CSV()
//	if err != nil {
//	    // handle error
//	}
//	for _, s := range sheets {
//	    fmt.Println(s.SheetName)
//	    fmt.Println(s.CSV)
//	}
//
// With options:
//
//	sheets, err := xlsxcsv.Open("report.xlsx").
//	    Sheets("Summary", "Q3").
//	    Workers(4).
//	    DoubleQuotes().
//	    CSV()
//
// For lower-level access, the xlsx and zipread packages are also available.
package xlsxcsv

import (
	"io"

	"github.com/tsawler/xlsxcsv/xlsx"
)

// SheetCSV is the CSV rendering of one sheet.
type SheetCSV = xlsx.SheetCSV

// SheetInfo describes a sheet as declared in the workbook manifest.
type SheetInfo = xlsx.SheetInfo

// Open returns a Converter for the workbook at filename. Nothing is read
// until a terminal operation such as CSV is called.
//
// Example:
//
//	sheets, err := xlsxcsv.Open("book.xlsx").CSV()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Converter reading a workbook of size bytes from src.
// The caller keeps ownership of src and must not use it concurrently with
// a terminal operation.
//
// Example:
//
//	f, err := os.Open("book.xlsx")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//	info, _ := f.Stat()
//	sheets, err := xlsxcsv.FromReader(f, info.Size()).CSV()
func FromReader(src io.ReadSeeker, size int64) *Converter {
	return &Converter{
		src:     src,
		size:    size,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	names := xlsxcsv.Must(xlsxcsv.Open("book.xlsx").SheetNames())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
