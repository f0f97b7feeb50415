package zipread

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Method is an entry's compression method as recorded in its local header.
type Method uint16

const (
	// Stored entries hold their data uncompressed.
	Stored Method = 0
	// Deflated entries hold raw deflate data.
	Deflated Method = 8
)

// String returns the method name, or "method(N)" for methods this package
// does not name.
func (m Method) String() string {
	switch m {
	case Stored:
		return "stored"
	case Deflated:
		return "deflated"
	default:
		return fmt.Sprintf("method(%d)", uint16(m))
	}
}

// RawEntry is an entry's data exactly as stored in the archive, still
// compressed when Method is Deflated. Data is owned by the caller.
type RawEntry struct {
	Name   string
	Method Method
	Data   []byte
}

const (
	localHeaderSignature    = 0x04034b50
	localHeaderLen          = 30
	dataDescriptorSignature = 0x08074b50

	// flagDataDescriptor marks entries whose sizes were unknown when the
	// local header was written and follow the data in a data descriptor.
	flagDataDescriptor = 0x8

	// scanChunkSize is how much of the source the descriptor scan buffers at
	// a time.
	scanChunkSize = 4 << 10
)

// Extract reads the local header for d and returns the entry's raw data.
func Extract(src io.ReadSeeker, d Descriptor) (*RawEntry, error) {
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &EntryError{Name: d.Name, Op: "extract", Err: fmt.Errorf("%w: seek to end: %w", ErrIO, err)}
	}
	entry, _, err := extract(src, size, d)
	return entry, err
}

// extract implements Extract for a source of known size. scanned reports
// whether the data length came from a descriptor scan rather than the header.
func extract(src io.ReadSeeker, size int64, d Descriptor) (entry *RawEntry, scanned bool, err error) {
	hdr := make([]byte, localHeaderLen)
	if err := readAt(src, int64(d.LocalHeaderOffset), hdr, "local header"); err != nil {
		return nil, false, &EntryError{Name: d.Name, Op: "read header", Err: err}
	}

	r := newByteReader(hdr)
	if sig := r.uint32(0); sig != localHeaderSignature {
		return nil, false, &EntryError{Name: d.Name, Op: "read header",
			Err: fmt.Errorf("%w: bad local header signature %#08x at offset %d", ErrFormat, sig, d.LocalHeaderOffset)}
	}
	flags := r.uint16(6)
	method := Method(r.uint16(8))
	declared := int64(r.uint32(18))
	nameLen := int64(r.uint16(26))
	extraLen := int64(r.uint16(28))
	dataStart := int64(d.LocalHeaderOffset) + localHeaderLen + nameLen + extraLen

	// Header sizes are trusted unless the writer deferred them to a data
	// descriptor and left them zero.
	length := declared
	if flags&flagDataDescriptor != 0 && declared == 0 {
		length, err = scanDataLength(src, dataStart)
		if err != nil {
			return nil, true, &EntryError{Name: d.Name, Op: "find data length", Err: err}
		}
		scanned = true
	}

	if dataStart+length > size {
		return nil, scanned, &EntryError{Name: d.Name, Op: "read data",
			Err: fmt.Errorf("%w: %d data bytes at offset %d run past %d-byte archive", ErrIO, length, dataStart, size)}
	}

	data := make([]byte, length)
	if err := readAt(src, dataStart, data, "entry data"); err != nil {
		return nil, scanned, &EntryError{Name: d.Name, Op: "read data", Err: err}
	}

	return &RawEntry{Name: d.Name, Method: method, Data: data}, scanned, nil
}

// scanDataLength reads forward from start looking for the data descriptor
// that terminates a streamed entry and returns the number of data bytes that
// precede it.
//
// Only the last four bytes seen are retained. A signature match is accepted
// when the descriptor's compressed-size field agrees with the scanned length;
// otherwise the bytes are payload that happens to look like a signature and
// scanning continues.
func scanDataLength(src io.ReadSeeker, start int64) (int64, error) {
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: seek to entry data at offset %d: %w", ErrIO, start, err)
	}

	br := bufio.NewReaderSize(src, scanChunkSize)
	var ring uint32 // last four bytes read, little-endian
	var n int64
	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: entry terminator not found in %d bytes after offset %d", ErrFormat, n, start)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: scanning entry data at offset %d: %w", ErrIO, start+n, err)
		}
		ring = ring>>8 | uint32(c)<<24
		n++

		if n >= 4 && ring == dataDescriptorSignature && descriptorAgrees(br, n-4) {
			return n - 4, nil
		}
	}
}

// descriptorAgrees peeks at the CRC and compressed-size fields that follow a
// descriptor signature and reports whether the size equals length.
func descriptorAgrees(br *bufio.Reader, length int64) bool {
	p, err := br.Peek(8)
	if err != nil {
		return false
	}
	return int64(binary.LittleEndian.Uint32(p[4:])) == length
}
