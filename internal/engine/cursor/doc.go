// Package cursor provides cursor positioning and jump history.
//
// The cursor package handles:
//
//   - The primary cursor position with the Cursor type
//   - A bounded jump list recording positions left by jump motions
//
// Cursor positions use buffer.Point coordinates (line and character column).
// A Cursor is safe for concurrent use; handlers read and write it through
// the execution context.
//
// Jump List:
//
// Motions that can move the cursor far away (such as the two-character
// sneak motions) push the position they leave onto the JumpList. Each
// entry is stamped with a unique ID and creation time so that front ends
// can display and reference individual jumps.
//
// Basic usage:
//
//	c := cursor.New()
//	c.Set(buffer.Point{Line: 3, Column: 7})
//
//	jumps := cursor.NewJumpList(cursor.DefaultJumpListSize)
//	jumps.Push(c.Get())
//	if entry, ok := jumps.Back(c.Get()); ok {
//	    c.Set(entry.Point)
//	}
package cursor
