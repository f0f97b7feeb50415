package zipread

import (
	"archive/zip"
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/require"
)

// testFile describes one entry for buildArchive.
type testFile struct {
	name     string
	body     []byte
	method   uint16
	streamed bool // defer sizes to a trailing data descriptor
}

// buildArchive writes files into an in-memory ZIP archive. Entries are written
// raw so tests control the compression method and whether the local header
// carries real sizes or zeros plus a data descriptor.
func buildArchive(t *testing.T, comment string, files ...testFile) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		payload := f.body
		if f.method == zip.Deflate {
			payload = deflateBytes(t, f.body)
		}
		fh := &zip.FileHeader{
			Name:               f.name,
			Method:             f.method,
			CRC32:              crc32.ChecksumIEEE(f.body),
			CompressedSize64:   uint64(len(payload)),
			UncompressedSize64: uint64(len(f.body)),
		}
		if f.streamed {
			fh.Flags |= flagDataDescriptor
		}
		w, err := zw.CreateRaw(fh)
		require.NoError(t, err)
		_, err = w.Write(payload)
		require.NoError(t, err)
	}
	if comment != "" {
		require.NoError(t, zw.SetComment(comment))
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func deflateBytes(t *testing.T, b []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	require.NoError(t, err)
	_, err = w.Write(b)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// eocdIndex returns the offset of the last EOCD signature in an archive
// built without a comment.
func eocdIndex(t *testing.T, data []byte) int {
	t.Helper()

	i := bytes.LastIndex(data, []byte{'P', 'K', 0x05, 0x06})
	require.GreaterOrEqual(t, i, 0, "archive has no EOCD record")
	return i
}

func openBytes(t *testing.T, data []byte) *Archive {
	t.Helper()

	a, err := Open(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return a
}
