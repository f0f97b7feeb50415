package xlsx

import (
	"errors"
	"fmt"

	"github.com/tsawler/xlsxcsv/zipread"
)

var (
	// ErrMissingPart is returned when an archive member the conversion needs
	// is absent: the workbook manifest, the shared strings, the styles, or a
	// declared worksheet.
	ErrMissingPart = errors.New("xlsx: missing part")

	// ErrFormat is returned for malformed XML and for cell data that cannot be
	// resolved, such as an out-of-range shared string index. It is the same
	// sentinel the archive reader uses for malformed binary structure.
	ErrFormat = zipread.ErrFormat
)

// PartError records a failure tied to one archive part.
type PartError struct {
	Part string // archive-internal path, e.g. "xl/styles.xml"
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("xlsx: %s: %v", e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}
