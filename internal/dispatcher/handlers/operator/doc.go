// Package operator provides handlers for Vim-style operator commands.
//
// Operators act on the charwise range a motion produced. The dispatcher
// passes it in Action.Args.Extra["range"] as a handler.OperatorRange.
//
//   - operator.delete (d): remove the range into a register
//   - operator.change (c): as delete; there is no insert mode to enter
//   - operator.yank (y): copy the range into a register
package operator
