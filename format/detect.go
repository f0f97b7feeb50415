// Package format identifies XLSX workbooks by file name and by content.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/xlsxcsv/zipread"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// ZIP indicates a ZIP archive that is not known to be a workbook.
	ZIP
	// XLSX indicates an Office Open XML workbook (.xlsx or .xlsm).
	XLSX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case ZIP:
		return "ZIP"
	case XLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case ZIP:
		return ".zip"
	case XLSX:
		return ".xlsx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return XLSX
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

var (
	localHeaderMagic  = []byte{'P', 'K', 0x03, 0x04}
	emptyArchiveMagic = []byte{'P', 'K', 0x05, 0x06}
)

// DetectFromMagic checks leading magic bytes. Every workbook is a ZIP
// archive, so the best it can report is ZIP; DetectFromReader looks inside
// the archive to tell a workbook apart.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, localHeaderMagic) || bytes.HasPrefix(data, emptyArchiveMagic) {
		return ZIP
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format. A ZIP archive
// holding any entry under xl/ is reported as XLSX.
func DetectFromReader(r io.ReadSeeker, size int64) (Format, error) {
	magic := make([]byte, 4)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Unknown, fmt.Errorf("seek to start: %w", err)
	}
	n, err := io.ReadFull(r, magic)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Unknown, err
	}
	if DetectFromMagic(magic[:n]) != ZIP {
		return Unknown, nil
	}

	return detectZIPFormat(r, size)
}

// detectZIPFormat reads the central directory to tell a workbook from any
// other archive. Entry data is never read.
func detectZIPFormat(r io.ReadSeeker, size int64) (Format, error) {
	a, err := zipread.Open(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, e := range a.Entries() {
		if strings.HasPrefix(e.Name, "xl/") {
			return XLSX, nil
		}
	}
	return ZIP, nil
}
