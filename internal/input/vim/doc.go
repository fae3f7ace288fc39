// Package vim parses normal-mode key sequences into commands.
//
// The grammar is a small subset of Vim's, built around the sneak motions:
//
//	[count]["x][operator]{f|F|t|T}{char}{char|<CR>}
//	[count]["x][operator]{;|,}
//	[count]{h|j|k|l|0|$|u|<C-r>}
//
// Examples:
//   - "fab": sneak forward to "ab"
//   - "Fx<CR>": sneak backward to the single character x
//   - "dtab": delete up to "ab"
//   - `"ayfab`: yank through "ab" into register a
//   - `"+yfab`: yank through "ab" to the system clipboard
//   - ";" and ",": repeat the last sneak in the same or opposite direction
//
// # Parser States
//
//  1. Initial: waiting for count, register, operator, sneak or motion
//  2. Count: accumulating digits
//  3. Register: after ", waiting for the register name
//  4. Operator: after d, c or y, waiting for a sneak or repeat
//  5. SneakFirst: after the trigger, waiting for the first character
//  6. SneakSecond: waiting for the second character or <CR>
package vim
