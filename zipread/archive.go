package zipread

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Archive is an indexed ZIP archive over a random-access source.
//
// Open locates the End-Of-Central-Directory record and enumerates the central
// directory up front; entries are read on demand. Every read seeks the shared
// source, so reads are serialized by an internal mutex and an Archive may be
// used from multiple goroutines.
type Archive struct {
	mu      sync.Mutex
	src     io.ReadSeeker
	size    int64
	handle  *Handle
	entries []Descriptor
	logger  *slog.Logger
}

// Option configures an Archive.
type Option func(*Archive)

// WithLogger sets the logger for archive operations.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// Open indexes the archive held by src, which is size bytes long.
func Open(src io.ReadSeeker, size int64, opts ...Option) (*Archive, error) {
	a := &Archive{src: src, size: size}
	for _, opt := range opts {
		opt(a)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	h, err := Locate(src, size)
	if err != nil {
		return nil, err
	}
	a.log().Debug("located end of central directory",
		"offset", h.Offset,
		"entries", h.EntryCount,
		"cd_offset", h.CentralDirectoryOffset,
		"cd_size", h.CentralDirectorySize)

	entries, err := Enumerate(src, h)
	if err != nil {
		return nil, err
	}
	a.log().Debug("enumerated central directory", "entries", len(entries))

	a.handle = h
	a.entries = entries
	return a, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// Handle returns a copy of the archive's EOCD information.
func (a *Archive) Handle() Handle {
	return *a.handle
}

// Size returns the archive length in bytes.
func (a *Archive) Size() int64 {
	return a.size
}

// Comment returns the archive comment.
func (a *Archive) Comment() string {
	return a.handle.Comment
}

// Entries returns the entry descriptors in central-directory order.
// The returned slice is a copy.
func (a *Archive) Entries() []Descriptor {
	out := make([]Descriptor, len(a.entries))
	copy(out, a.entries)
	return out
}

// ReadEntry extracts the raw data of the entry described by d.
func (a *Archive) ReadEntry(d Descriptor) (*RawEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, scanned, err := extract(a.src, a.size, d)
	if err != nil {
		return nil, err
	}
	a.log().Debug("extracted entry",
		"name", entry.Name,
		"method", entry.Method.String(),
		"bytes", len(entry.Data),
		"scanned", scanned)
	return entry, nil
}

// ReadAll extracts every entry in central-directory order. The first failure
// aborts the read and no entries are returned.
func (a *Archive) ReadAll() ([]*RawEntry, error) {
	out := make([]*RawEntry, 0, len(a.entries))
	for i, d := range a.entries {
		entry, err := a.ReadEntry(d)
		if err != nil {
			return nil, fmt.Errorf("entry %d of %d: %w", i+1, len(a.entries), err)
		}
		out = append(out, entry)
	}
	return out, nil
}
