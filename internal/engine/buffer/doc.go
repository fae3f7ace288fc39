// Package buffer provides the line-oriented text buffer that motions scan.
//
// The buffer stores its content as a slice of lines with line endings
// stripped. Positions are expressed as a Point whose Column counts
// characters (runes) from the start of the line, which is the coordinate
// system the search motions operate in.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line-ending normalization on load
//   - Character-wise range extraction and deletion for operators
//   - Read-only snapshots that motions scan without holding a lock
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("the cat sat\non the mat")
//
//	buf.LineCount()  // 2
//	buf.LineText(1)  // "on the mat"
//
//	// Delete "cat " from the first line
//	buf.Delete(buffer.NewRange(buffer.Point{Line: 0, Column: 4}, buffer.Point{Line: 0, Column: 8}))
//
//	// Scan a consistent view while edits continue elsewhere
//	snap := buf.Snapshot()
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock. Snapshots share
// no mutable state with the buffer.
package buffer
