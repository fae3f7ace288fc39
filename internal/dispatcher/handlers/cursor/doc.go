// Package cursor provides handlers for cursor movement operations.
//
//   - cursor.left (h), cursor.right (l): move by [count] characters
//   - cursor.up (k), cursor.down (j): move by [count] lines, keeping the
//     preferred column
//   - cursor.lineStart (0), cursor.lineEnd ($)
//   - cursor.jumpBack (<C-o>), cursor.jumpForward (<Tab>): walk the jump
//     list that sneak motions fill
//
// Usage:
//
//	dispatcher.RegisterNamespace("cursor", cursor.NewHandler())
package cursor
