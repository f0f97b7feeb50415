package zipread

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for archive operations.
var (
	// ErrFormat is returned when the archive's binary structure is malformed or
	// unrecognized: a missing EOCD record, a bad header signature, a central
	// directory that cannot yield its declared entry count, or an entry whose
	// data descriptor cannot be found.
	ErrFormat = errors.New("zipread: malformed archive")

	// ErrIO is returned when the underlying source cannot be seeked or returns
	// fewer bytes than a structure declares.
	ErrIO = errors.New("zipread: short read")
)

// EntryError records a failure while extracting a single archive entry.
type EntryError struct {
	Name string // archive-internal path of the entry
	Op   string // operation that failed, e.g. "read header"
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("zipread: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// readAt seeks src to off and fills buf completely. what names the structure
// being read so short reads can be diagnosed.
func readAt(src io.ReadSeeker, off int64, buf []byte, what string) error {
	if _, err := src.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek to %s at offset %d: %w", ErrIO, what, off, err)
	}
	n, err := io.ReadFull(src, buf)
	if err != nil {
		return fmt.Errorf("%w: %s at offset %d: read %d of %d bytes: %w", ErrIO, what, off, n, len(buf), err)
	}
	return nil
}
