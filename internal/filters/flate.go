package filters

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// ErrDecompression is returned when a deflate stream is malformed or truncated.
var ErrDecompression = errors.New("filters: decompression failed")

// inflaters holds reusable raw-deflate readers.
var inflaters = sync.Pool{
	New: func() any {
		return flate.NewReader(nil)
	},
}

// Inflate decompresses raw deflate data (RFC 1951) with no zlib or gzip
// wrapper, as stored in ZIP entries using compression method 8.
func Inflate(data []byte) ([]byte, error) {
	return InflateSize(data, 0)
}

// InflateSize is like Inflate but preallocates room for sizeHint output bytes.
// The hint only sizes the buffer; output may be shorter or longer.
func InflateSize(data []byte, sizeHint int) ([]byte, error) {
	rc := inflaters.Get().(io.ReadCloser)
	defer inflaters.Put(rc)

	if err := rc.(flate.Resetter).Reset(bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("%w: reset inflater: %w", ErrDecompression, err)
	}

	var buf bytes.Buffer
	if sizeHint > 0 {
		buf.Grow(sizeHint)
	}
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("%w: %d compressed bytes: %w", ErrDecompression, len(data), err)
	}
	return buf.Bytes(), nil
}
