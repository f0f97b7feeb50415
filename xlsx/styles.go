package xlsx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// CellKind classifies how a styled numeric cell is displayed.
type CellKind int

const (
	// KindValue cells are shown as their literal value.
	KindValue CellKind = iota
	// KindDate cells hold a day-count serial and are shown as a calendar date.
	KindDate
	// KindDuration cells hold a fractional day count and are shown as d/h/m/s.
	KindDuration
)

// String returns the string representation of the cell kind.
func (k CellKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindDate:
		return "date"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// kindForNumFmt maps a cell format's numFmtId to a CellKind. The table is
// closed: 14 and 164 are dates, 46 is an elapsed-time duration, and every
// other id, 0 included, is a plain value.
func kindForNumFmt(id int) CellKind {
	switch id {
	case 14, 164:
		return KindDate
	case 46:
		return KindDuration
	default:
		return KindValue
	}
}

// StyleTable maps a cell's style index (its s attribute) to a CellKind.
type StyleTable []CellKind

// Kind returns the kind for style index i. Indices outside the table are
// plain values.
func (t StyleTable) Kind(i int) CellKind {
	if i < 0 || i >= len(t) {
		return KindValue
	}
	return t[i]
}

// parseStyles builds the style table from xl/styles.xml. Only the cellXfs
// records are indexed by cell s attributes.
func parseStyles(text string) (StyleTable, error) {
	var ss stylesXML
	if err := xml.Unmarshal([]byte(text), &ss); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	table := make(StyleTable, len(ss.Xf))
	for i, xf := range ss.Xf {
		id, err := strconv.Atoi(strings.TrimSpace(xf.NumFmtID))
		if err != nil {
			// A missing or non-numeric numFmtId falls outside the table.
			table[i] = KindValue
			continue
		}
		table[i] = kindForNumFmt(id)
	}
	return table, nil
}

// SharedStringTable maps a shared-string index to its display text.
type SharedStringTable []string

// Lookup resolves the raw value of a t="s" cell. An index that is not an
// integer or falls outside the table is an ErrFormat error.
func (t SharedStringTable) Lookup(raw string) (string, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: shared string index %q is not an integer", ErrFormat, raw)
	}
	if idx < 0 || idx >= len(t) {
		return "", fmt.Errorf("%w: shared string index %d out of range (table has %d entries)", ErrFormat, idx, len(t))
	}
	return t[idx], nil
}

// parseSharedStrings builds the shared string table from xl/sharedStrings.xml.
// Each entry is either plain text or a sequence of rich-text runs, which are
// concatenated.
func parseSharedStrings(text string) (SharedStringTable, error) {
	var sst sharedStringsXML
	if err := xml.Unmarshal([]byte(text), &sst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	table := make(SharedStringTable, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != nil {
			table[i] = *si.T
			continue
		}
		var b strings.Builder
		for _, run := range si.R {
			b.WriteString(run.T)
		}
		table[i] = b.String()
	}
	return table, nil
}
