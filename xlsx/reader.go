package xlsx

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/xlsxcsv/zipread"
)

// Open reads an XLSX workbook from src, which holds size bytes, and
// assembles it into a Document.
func Open(src io.ReadSeeker, size int64, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)

	a, err := zipread.Open(src, size, zipread.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	return Assemble(a, opts...)
}

// OpenFile opens an XLSX file from disk. The file is fully read and closed
// before OpenFile returns.
func OpenFile(filename string, opts ...Option) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat workbook: %w", err)
	}
	return Open(f, info.Size(), opts...)
}

// SheetCSV is the CSV rendering of one sheet.
type SheetCSV struct {
	SheetName string
	CSV       string
}

// ExtractOptions holds options for CSV extraction.
type ExtractOptions struct {
	// Filter selects sheets by their manifest entry. A nil Filter selects
	// every sheet. Sheets that are not selected are never parsed.
	Filter func(SheetInfo) bool

	// Quoting selects how embedded double quotes are escaped.
	Quoting Quoting
}

// Convert renders every sheet accepted by filter as CSV, in manifest order.
// A nil filter selects every sheet.
func Convert(doc *Document, filter func(SheetInfo) bool) ([]SheetCSV, error) {
	return doc.CSVWithOptions(ExtractOptions{Filter: filter})
}

// CSV renders every sheet as CSV with default options.
func (d *Document) CSV() ([]SheetCSV, error) {
	return d.CSVWithOptions(ExtractOptions{})
}

// CSVWithOptions renders the selected sheets as CSV.
func (d *Document) CSVWithOptions(opts ExtractOptions) ([]SheetCSV, error) {
	out := make([]SheetCSV, 0, len(d.Sheets))
	for _, info := range d.Sheets {
		if opts.Filter != nil && !opts.Filter(info) {
			d.logger.Debug("skipping sheet", "sheet", info.Name)
			continue
		}

		text, err := d.sheetCSV(info, opts.Quoting)
		if err != nil {
			return nil, err
		}
		out = append(out, SheetCSV{SheetName: info.Name, CSV: text})
	}
	return out, nil
}

func (d *Document) sheetCSV(info SheetInfo, q Quoting) (string, error) {
	ws, err := d.Worksheet(info)
	if err != nil {
		return "", err
	}

	rows, err := ws.Resolve(d.SharedStrings, d.Styles)
	if err != nil {
		return "", &PartError{Part: ws.Part, Err: err}
	}

	text := q.Serialize(rows)
	d.logger.Debug("converted sheet",
		"sheet", info.Name,
		"part", ws.Part,
		"rows", ws.RowCount(),
		"bytes", len(text))
	return text, nil
}
