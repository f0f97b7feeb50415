// Package zipread is a minimal ZIP container reader for Office Open XML
// documents.
//
// It reads only what a spreadsheet conversion needs: the End-Of-Central-
// Directory record, the central directory listing, and each entry's raw,
// possibly still-compressed bytes. Decompression is left to the caller.
//
// # Reading an Archive
//
//	f, _ := os.Open("book.xlsx")
//	info, _ := f.Stat()
//	a, err := zipread.Open(f, info.Size())
//	if err != nil {
//	    // handle error
//	}
//	for _, d := range a.Entries() {
//	    e, err := a.ReadEntry(d)
//	    // e.Method tells whether e.Data is Stored or Deflated
//	}
//
// # Streamed Entries
//
// Writers that do not know an entry's size in advance set general purpose
// flag bit 3, leave the local header sizes at zero and append a data
// descriptor after the data. For those entries the data length is found by
// scanning forward for the descriptor signature (50 4B 07 08) and checking
// the descriptor's compressed-size field against the bytes scanned.
//
// ZIP64, multi-disk archives and writing are not supported.
package zipread
