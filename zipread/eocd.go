package zipread

import (
	"fmt"
	"io"
)

const (
	eocdSignature = 0x06054b50
	eocdLen       = 22
	maxCommentLen = 65535

	// maxEOCDSearch is the largest trailing window that can hold the EOCD
	// record: the fixed record plus a maximum-length comment.
	maxEOCDSearch = eocdLen + maxCommentLen
)

// Handle describes an archive's central directory as declared by its
// End-Of-Central-Directory record. It is never modified after Locate returns.
type Handle struct {
	CentralDirectoryOffset uint32
	CentralDirectorySize   uint32
	EntryCount             uint32

	// Offset is the absolute position of the EOCD record in the source.
	Offset int64

	// Comment is the archive comment that trails the EOCD record.
	Comment string
}

// Locate finds the End-Of-Central-Directory record of the archive held by src,
// which is size bytes long.
//
// The trailing min(size, 65557) bytes are read in one pass and scanned from the
// end towards the start, so the right-most acceptable signature wins. A
// candidate is acceptable only if the fixed record fits in the window and its
// declared comment does not run past the end of it.
func Locate(src io.ReadSeeker, size int64) (*Handle, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative archive size %d", ErrFormat, size)
	}

	window := min(size, maxEOCDSearch)
	start := size - window
	buf := make([]byte, window)
	if err := readAt(src, start, buf, "EOCD search window"); err != nil {
		return nil, err
	}

	pos := findEOCD(buf)
	if pos < 0 {
		return nil, fmt.Errorf("%w: EOCD not found", ErrFormat)
	}

	r := newByteReader(buf[pos:])
	h := &Handle{
		EntryCount:             uint32(r.uint16(10)),
		CentralDirectorySize:   r.uint32(12),
		CentralDirectoryOffset: r.uint32(16),
		Offset:                 start + int64(pos),
	}
	h.Comment = r.string(eocdLen, int(r.uint16(20)))
	if err := r.err(); err != nil {
		return nil, err
	}
	return h, nil
}

// findEOCD returns the index of the last acceptable EOCD record in b, or -1.
func findEOCD(b []byte) int {
	for i := len(b) - eocdLen; i >= 0; i-- {
		if b[i] != 'P' || b[i+1] != 'K' || b[i+2] != 0x05 || b[i+3] != 0x06 {
			continue
		}
		commentLen := int(b[i+eocdLen-2]) | int(b[i+eocdLen-1])<<8
		if i+eocdLen+commentLen <= len(b) {
			return i
		}
	}
	return -1
}
