package xlsxcsv

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/xlsxcsv/format"
	"github.com/tsawler/xlsxcsv/xlsx"
)

// Converter provides a fluent interface for converting workbooks to CSV.
// Each configuration method returns a new Converter instance, making it
// safe to share a partially configured Converter and allowing method
// chaining.
type Converter struct {
	// Source; exactly one of filename or src is set
	filename string
	src      io.ReadSeeker
	size     int64

	// Configuration
	options ConvertOptions
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		src:      c.src,
		size:     c.size,
		options:  c.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Sheets restricts conversion to sheets with the given names.
// Multiple calls are cumulative, and combine with SheetIDs.
//
// Example:
//
//	sheets, err := xlsxcsv.Open("book.xlsx").Sheets("Summary").CSV()
func (c *Converter) Sheets(names ...string) *Converter {
	newConv := c.clone()
	newConv.options.sheetNames = append(newConv.options.sheetNames, names...)
	return newConv
}

// SheetIDs restricts conversion to sheets with the given sheetId values
// from the workbook manifest. Multiple calls are cumulative.
func (c *Converter) SheetIDs(ids ...string) *Converter {
	newConv := c.clone()
	newConv.options.sheetIDs = append(newConv.options.sheetIDs, ids...)
	return newConv
}

// Filter sets a predicate that a sheet must also satisfy to be converted.
// A later call replaces an earlier one.
func (c *Converter) Filter(fn func(SheetInfo) bool) *Converter {
	newConv := c.clone()
	newConv.options.filter = fn
	return newConv
}

// Workers sets how many workbook parts are decompressed in parallel.
// Values < 1 use GOMAXPROCS.
func (c *Converter) Workers(n int) *Converter {
	newConv := c.clone()
	newConv.options.workers = n
	return newConv
}

// DoubleQuotes escapes embedded double quotes as "" per RFC 4180 instead of
// the default \".
func (c *Converter) DoubleQuotes() *Converter {
	newConv := c.clone()
	newConv.options.quoting = xlsx.QuoteDouble
	return newConv
}

// Logger sets the logger used while reading and converting.
// If not set, logging is disabled.
func (c *Converter) Logger(logger *slog.Logger) *Converter {
	newConv := c.clone()
	newConv.options.logger = logger
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// CSV converts the selected sheets, in manifest order. Any failure discards
// all results.
//
// Example:
//
//	sheets, err := xlsxcsv.Open("book.xlsx").CSV()
func (c *Converter) CSV() ([]SheetCSV, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}

	return doc.CSVWithOptions(xlsx.ExtractOptions{
		Filter:  c.options.selects,
		Quoting: c.options.quoting,
	})
}

// SheetNames returns the names of all sheets in the workbook, in manifest
// order. Sheet selection does not apply.
func (c *Converter) SheetNames() ([]string, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}
	return doc.SheetNames(), nil
}

// Document reads and assembles the workbook, for callers that need the
// lower-level xlsx API.
func (c *Converter) Document() (*xlsx.Document, error) {
	if c.src != nil {
		return xlsx.Open(c.src, c.size, c.options.xlsxOptions()...)
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	return c.openFile()
}

// openFile opens the named workbook after checking that it looks like one,
// by extension or by its leading bytes.
func (c *Converter) openFile() (*xlsx.Document, error) {
	f, err := os.Open(c.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}

	if format.Detect(c.filename) == format.Unknown {
		magic := make([]byte, 4)
		n, err := io.ReadFull(f, magic)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read workbook: %w", err)
		}
		if format.DetectFromMagic(magic[:n]) == format.Unknown {
			return nil, fmt.Errorf("%w: unsupported file format: %s", ErrFormat, c.filename)
		}
	}

	doc, err := xlsx.Open(f, info.Size(), c.options.xlsxOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX: %w", err)
	}
	return doc, nil
}
