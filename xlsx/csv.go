package xlsx

import "strings"

// Quoting selects how double quotes inside a quoted CSV field are escaped.
type Quoting int

const (
	// QuoteBackslash escapes embedded quotes as \". This is the output
	// existing consumers of this converter expect, and the default.
	QuoteBackslash Quoting = iota
	// QuoteDouble escapes embedded quotes as "" per RFC 4180.
	QuoteDouble
)

// String returns the string representation of the quoting style.
func (q Quoting) String() string {
	switch q {
	case QuoteBackslash:
		return "backslash"
	case QuoteDouble:
		return "double"
	default:
		return "unknown"
	}
}

// SerializeCSV renders resolved rows as CSV using QuoteBackslash.
func SerializeCSV(rows [][]string) string {
	return QuoteBackslash.Serialize(rows)
}

// Serialize renders resolved rows as CSV. Cells are joined with commas and
// rows with newlines, and the result is trimmed of surrounding whitespace.
// A cell containing a comma, a double quote or a line break is wrapped in
// double quotes.
func (q Quoting) Serialize(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(q.escape(cell))
		}
	}
	return strings.TrimSpace(b.String())
}

func (q Quoting) escape(cell string) string {
	if !strings.ContainsAny(cell, ",\"\r\n") {
		return cell
	}
	quote := `\"`
	if q == QuoteDouble {
		quote = `""`
	}
	return `"` + strings.ReplaceAll(cell, `"`, quote) + `"`
}
