package zipread

import (
	"encoding/binary"
	"fmt"
)

// byteReader decodes little-endian fixed-width fields from a byte buffer.
//
// Reads are addressed by absolute offset within the buffer. The first read
// that falls outside the buffer is recorded and returned by err; every later
// read returns a zero value, so a record can be decoded field by field and
// checked once at the end.
type byteReader struct {
	buf     []byte
	failure error
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

func (r *byteReader) fits(off, n int) bool {
	if r.failure != nil {
		return false
	}
	if off < 0 || n < 0 || off+n > len(r.buf) {
		r.failure = fmt.Errorf("%w: read of %d bytes at offset %d exceeds %d-byte buffer", ErrFormat, n, off, len(r.buf))
		return false
	}
	return true
}

func (r *byteReader) uint16(off int) uint16 {
	if !r.fits(off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(r.buf[off:])
}

func (r *byteReader) uint32(off int) uint32 {
	if !r.fits(off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.buf[off:])
}

// string returns n bytes at off as a string. The bytes are copied, so the
// result does not alias the buffer.
func (r *byteReader) string(off, n int) string {
	if !r.fits(off, n) {
		return ""
	}
	return string(r.buf[off : off+n])
}

func (r *byteReader) err() error {
	return r.failure
}
