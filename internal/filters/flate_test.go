package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"sync"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deflate compresses data as a raw deflate stream for testing
func deflate(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestInflateBasic(t *testing.T) {
	original := []byte(`<?xml version="1.0"?><sst><si><t>Hello, World!</t></si></sst>`)

	decoded, err := Inflate(deflate(t, original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestInflateEmpty(t *testing.T) {
	decoded, err := Inflate(deflate(t, nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestInflateSizeHint(t *testing.T) {
	original := bytes.Repeat([]byte("0123456789"), 1000)

	for _, hint := range []int{0, 1, len(original), len(original) * 4} {
		decoded, err := InflateSize(deflate(t, original), hint)
		require.NoError(t, err, "hint %d", hint)
		assert.Equal(t, original, decoded, "hint %d", hint)
	}
}

func TestInflateRejectsZlibWrapper(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte("wrapped data should not inflate as raw deflate"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	decoded, err := Inflate(buf.Bytes())
	if err == nil {
		// The two header bytes may parse as a block; the payload must not survive.
		assert.NotEqual(t, []byte("wrapped data should not inflate as raw deflate"), decoded)
		return
	}
	assert.ErrorIs(t, err, ErrDecompression)
}

func TestInflateInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"reserved block type", []byte{0xff, 0xff, 0xff, 0xff}},
		{"truncated", []byte{0x01, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inflate(tt.data)
			require.ErrorIs(t, err, ErrDecompression)
		})
	}
}

func TestInflateTruncatedStream(t *testing.T) {
	compressed := deflate(t, bytes.Repeat([]byte("abcdefgh"), 512))

	_, err := Inflate(compressed[:len(compressed)/2])
	require.ErrorIs(t, err, ErrDecompression)
}

func TestInflateConcurrent(t *testing.T) {
	inputs := make([][]byte, 32)
	for i := range inputs {
		inputs[i] = bytes.Repeat([]byte(fmt.Sprintf("part %d;", i)), 100+i)
	}

	var wg sync.WaitGroup
	results := make([][]byte, len(inputs))
	errs := make([]error, len(inputs))
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, compressed []byte) {
			defer wg.Done()
			results[i], errs[i] = Inflate(compressed)
		}(i, deflate(t, in))
	}
	wg.Wait()

	for i := range inputs {
		require.NoError(t, errs[i])
		assert.Equal(t, inputs[i], results[i])
	}
}
