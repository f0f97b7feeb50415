package xlsx

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Cell is one <c> record from a worksheet, with the optional parts made
// explicit.
type Cell struct {
	Ref string // Cell reference (e.g., "B3"), informational only

	Value    string // Raw <v> text
	HasValue bool   // Whether a <v> element was present

	Type string // t attribute; "" when absent

	Style    int  // s attribute
	HasStyle bool // Whether an s attribute was present
}

// dateEpoch is day zero for serial dates. Using 1899-12-30 rather than
// 1900-01-01 absorbs the spreadsheet 1900 leap-year bug for every date after
// February 1900.
var dateEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayout renders dates as DD/MM/YYYY.
const dateLayout = "02/01/2006"

// Resolve returns the display text for c. Rules apply in order:
//
//  1. no raw value: empty string
//  2. t="s": the shared string at the raw index
//  3. style is a date: the serial rendered as DD/MM/YYYY
//  4. style is a duration: the fractional days rendered as e.g. "1d2h30m"
//  5. anything else: the raw text
//
// Resolve has no side effects; the same inputs always give the same output.
func Resolve(c Cell, ss SharedStringTable, st StyleTable) (string, error) {
	if !c.HasValue {
		return "", nil
	}

	if c.Type == "s" {
		return ss.Lookup(c.Value)
	}

	if c.HasStyle {
		switch st.Kind(c.Style) {
		case KindDate:
			return formatDate(c.Value), nil
		case KindDuration:
			return formatDuration(c.Value), nil
		}
	}

	return c.Value, nil
}

// parseSerial parses a numeric cell value, rejecting NaN and infinities.
func parseSerial(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// formatDate renders a day-count serial as a date. Any time-of-day fraction
// is dropped. Values that are not numbers are returned unchanged.
func formatDate(raw string) string {
	serial, ok := parseSerial(raw)
	if !ok {
		return raw
	}
	return dateEpoch.AddDate(0, 0, int(math.Floor(serial))).Format(dateLayout)
}

// formatDuration renders a fractional day count as days, hours, minutes and
// seconds, omitting zero components. A zero duration renders as "". Values
// that are not numbers are returned unchanged.
func formatDuration(raw string) string {
	days, ok := parseSerial(raw)
	if !ok {
		return raw
	}

	total := int64(math.Round(days * 86400))
	var b strings.Builder
	if total < 0 {
		b.WriteByte('-')
		total = -total
	}

	parts := []struct {
		n    int64
		unit byte
	}{
		{total / 86400, 'd'},
		{total % 86400 / 3600, 'h'},
		{total % 3600 / 60, 'm'},
		{total % 60, 's'},
	}
	for _, p := range parts {
		if p.n != 0 {
			b.WriteString(strconv.FormatInt(p.n, 10))
			b.WriteByte(p.unit)
		}
	}

	if total == 0 {
		return ""
	}
	return b.String()
}
