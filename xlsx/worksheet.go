package xlsx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// SheetInfo describes a sheet as declared in the workbook manifest.
type SheetInfo struct {
	Name    string
	SheetID string
	Index   int // 0-indexed position in the manifest
}

// Worksheet holds the parsed cells of one sheet, rows and cells in the order
// they appear in the sheet XML.
type Worksheet struct {
	Info SheetInfo
	Part string // archive path the sheet was read from
	Rows [][]Cell
}

// parseWorksheet parses sheet XML into rows of cells.
func parseWorksheet(text string, info SheetInfo, part string) (*Worksheet, error) {
	var ws worksheetXML
	if err := xml.Unmarshal([]byte(text), &ws); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	sheet := &Worksheet{
		Info: info,
		Part: part,
		Rows: make([][]Cell, len(ws.Rows)),
	}
	for i, row := range ws.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, c := range row.Cells {
			cell := Cell{Ref: c.R, Type: c.T}
			if c.V != nil {
				cell.Value = *c.V
				cell.HasValue = true
			}
			if c.S != "" {
				style, err := strconv.Atoi(strings.TrimSpace(c.S))
				if err != nil {
					return nil, fmt.Errorf("%w: cell %s: style index %q is not an integer", ErrFormat, c.R, c.S)
				}
				cell.Style = style
				cell.HasStyle = true
			}
			cells[j] = cell
		}
		sheet.Rows[i] = cells
	}

	return sheet, nil
}

// Resolve returns the display text of every cell, row by row.
func (w *Worksheet) Resolve(ss SharedStringTable, st StyleTable) ([][]string, error) {
	rows := make([][]string, len(w.Rows))
	for i, row := range w.Rows {
		out := make([]string, len(row))
		for j, c := range row {
			v, err := Resolve(c, ss, st)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d (%s): %w", i+1, j+1, c.Ref, err)
			}
			out[j] = v
		}
		rows[i] = out
	}
	return rows, nil
}

// RowCount returns the number of rows in the sheet.
func (w *Worksheet) RowCount() int {
	return len(w.Rows)
}
