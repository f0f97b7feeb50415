// Package filters provides the decompression filters used to decode archive
// entries.
//
// ZIP entries stored with compression method 8 hold a raw deflate stream
// (RFC 1951) without the zlib header and checksum:
//
//	decoded, err := filters.Inflate(entry.Data)
//
// Failures wrap ErrDecompression. Readers are pooled, and Inflate may be called
// from many goroutines at once.
package filters
