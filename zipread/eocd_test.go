package zipread

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	data := buildArchive(t, "",
		testFile{name: "a.txt", body: []byte("alpha"), method: zip.Store},
		testFile{name: "b.txt", body: []byte("bravo"), method: zip.Deflate},
	)

	h, err := Locate(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, uint32(2), h.EntryCount)
	assert.Equal(t, int64(eocdIndex(t, data)), h.Offset)
	assert.Equal(t, int64(h.CentralDirectoryOffset)+int64(h.CentralDirectorySize), h.Offset)
	assert.Empty(t, h.Comment)
}

func TestLocateSelectsLastSignature(t *testing.T) {
	// A stored entry whose body looks like a complete EOCD record sits before
	// the real one; the backward scan must pick the real record.
	fake := append([]byte{'P', 'K', 0x05, 0x06}, make([]byte, eocdLen-4)...)
	fake[10] = 9 // bogus entry count
	data := buildArchive(t, "", testFile{name: "decoy.bin", body: fake, method: zip.Store})

	h, err := Locate(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.EntryCount)
	assert.Equal(t, int64(eocdIndex(t, data)), h.Offset)
}

func TestLocateIgnoresSignatureInComment(t *testing.T) {
	comment := "PK\x05\x06" + strings.Repeat("A", 40)
	data := buildArchive(t, comment, testFile{name: "a.txt", body: []byte("alpha"), method: zip.Store})

	h, err := Locate(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.EntryCount)
	assert.Equal(t, comment, h.Comment)
	assert.Equal(t, int64(len(data)-eocdLen-len(comment)), h.Offset)
}

func TestLocateNotFound(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"shorter than record", []byte("PK\x05\x06")},
		{"plain text", []byte(strings.Repeat("not a zip file ", 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(bytes.NewReader(tt.data), int64(len(tt.data)))
			require.ErrorIs(t, err, ErrFormat)
			assert.Contains(t, err.Error(), "EOCD not found")
		})
	}
}

func TestLocateShortSource(t *testing.T) {
	data := buildArchive(t, "", testFile{name: "a.txt", body: []byte("alpha"), method: zip.Store})

	// Claim the source is longer than it is.
	_, err := Locate(bytes.NewReader(data), int64(len(data))+100)
	require.ErrorIs(t, err, ErrIO)
}

func TestLocateWindowBound(t *testing.T) {
	// Padding the front of the archive beyond the search window must not
	// change what is found.
	body := bytes.Repeat([]byte("x"), maxEOCDSearch*2)
	data := buildArchive(t, "", testFile{name: "big.txt", body: body, method: zip.Store})

	h, err := Locate(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), h.EntryCount)
}
