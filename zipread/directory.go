package zipread

import (
	"fmt"
	"io"
)

const (
	centralHeaderSignature = 0x02014b50
	centralHeaderLen       = 46
)

// Descriptor identifies one archive entry as listed in the central directory.
type Descriptor struct {
	Name              string
	LocalHeaderOffset uint32
}

// Enumerate reads the central directory described by h and returns exactly
// h.EntryCount descriptors in directory order. Bytes after the last declared
// record are ignored.
//
// A central directory shorter on disk than h.CentralDirectorySize fails with
// ErrIO. One that cannot be parsed into h.EntryCount records fails with
// ErrFormat.
func Enumerate(src io.ReadSeeker, h *Handle) ([]Descriptor, error) {
	buf := make([]byte, h.CentralDirectorySize)
	if err := readAt(src, int64(h.CentralDirectoryOffset), buf, "central directory"); err != nil {
		return nil, err
	}

	// Each record is at least centralHeaderLen bytes, which bounds the
	// allocation when the declared count is corrupt.
	entries := make([]Descriptor, 0, min(int(h.EntryCount), len(buf)/centralHeaderLen))

	r := newByteReader(buf)
	off := 0
	for i := 0; i < int(h.EntryCount); i++ {
		if sig := r.uint32(off); r.err() == nil && sig != centralHeaderSignature {
			return nil, countMismatch(h, i, fmt.Errorf("bad record signature %#08x at offset %d", sig, off))
		}
		nameLen := int(r.uint16(off + 28))
		extraLen := int(r.uint16(off + 30))
		commentLen := int(r.uint16(off + 32))
		localOffset := r.uint32(off + 42)
		name := r.string(off+centralHeaderLen, nameLen)
		if err := r.err(); err != nil {
			return nil, countMismatch(h, i, err)
		}

		entries = append(entries, Descriptor{Name: name, LocalHeaderOffset: localOffset})
		off += centralHeaderLen + nameLen + extraLen + commentLen
	}

	return entries, nil
}

func countMismatch(h *Handle, parsed int, cause error) error {
	return fmt.Errorf("%w: central directory declares %d entries but only %d could be parsed: %v",
		ErrFormat, h.EntryCount, parsed, cause)
}
