package xlsx

import "testing"

func TestSerializeCSV(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{"empty", nil, ""},
		{"single cell", [][]string{{"a"}}, "a"},
		{"rows and cells", [][]string{{"a", "b"}, {"c", "d"}}, "a,b\nc,d"},
		{"comma is quoted", [][]string{{"a,b", "c"}}, `"a,b",c`},
		{"quote inside comma cell", [][]string{{`say "hi", bye`}}, `"say \"hi\", bye"`},
		{"bare quote is quoted", [][]string{{`5" pipe`}}, `"5\" pipe"`},
		{"newline is quoted", [][]string{{"line1\nline2"}}, "\"line1\nline2\""},
		{"carriage return is quoted", [][]string{{"a\rb"}}, "\"a\rb\""},
		{"empty cells", [][]string{{"", "x", ""}}, ",x,"},
		{"empty row", [][]string{{"a"}, {}, {"b"}}, "a\n\nb"},
		{"trailing empty rows trimmed", [][]string{{"a"}, {}, {}}, "a"},
		{"surrounding whitespace trimmed", [][]string{{"  a"}, {"b  "}}, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SerializeCSV(tt.rows); got != tt.want {
				t.Errorf("SerializeCSV() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuoteDouble(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"plain", "plain"},
		{"a,b", `"a,b"`},
		{`say "hi", bye`, `"say ""hi"", bye"`},
		{`"`, `""""`},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			if got := QuoteDouble.Serialize([][]string{{tt.cell}}); got != tt.want {
				t.Errorf("Serialize(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestSerializeCSVIdempotent(t *testing.T) {
	rows := [][]string{{"a,b", `c"d`}, {"15/03/2023", "12h"}}

	first := SerializeCSV(rows)
	if second := SerializeCSV(rows); second != first {
		t.Errorf("second call = %q, want %q", second, first)
	}
	if rows[0][0] != "a,b" || rows[0][1] != `c"d` {
		t.Errorf("SerializeCSV modified its input: %q", rows)
	}
}

func TestQuotingString(t *testing.T) {
	tests := []struct {
		q    Quoting
		want string
	}{
		{QuoteBackslash, "backslash"},
		{QuoteDouble, "double"},
		{Quoting(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quoting(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}
