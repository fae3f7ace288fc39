// Package history provides undo and redo for buffer edits.
//
// An Operation records one edit: where it started, the text it removed,
// the text it inserted and the cursor on either side. History keeps two
// bounded stacks of operations:
//
//	h := history.NewHistory(1000)
//	h.Push(history.NewDeleteOperation(r, removed))
//
//	op, err := h.Undo(buf) // reinserts the removed text
//	op, err = h.Redo(buf)  // deletes it again
//
// Undo returns the operation so the caller can restore CursorBefore; Redo
// returns it for CursorAfter. Pushing a new operation discards the redo
// stack.
package history
