package xlsxcsv

import (
	"github.com/tsawler/xlsxcsv/internal/filters"
	"github.com/tsawler/xlsxcsv/xlsx"
	"github.com/tsawler/xlsxcsv/zipread"
)

// Sentinel errors, usable with errors.Is on anything a Converter returns.
var (
	// ErrFormat reports a malformed archive, malformed XML or unresolvable
	// cell data, and inputs that are not workbooks at all.
	ErrFormat = zipread.ErrFormat

	// ErrIO reports a source that ended before a declared structure did.
	ErrIO = zipread.ErrIO

	// ErrMissingPart reports a required workbook part that is absent.
	ErrMissingPart = xlsx.ErrMissingPart

	// ErrDecompression reports a corrupt deflate stream.
	ErrDecompression = filters.ErrDecompression
)
