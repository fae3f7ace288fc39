// Package key provides key event types and parsing for the input system.
//
// Keys are written in Vim notation. Plain characters stand for themselves
// and special keys use angle brackets:
//
//	fat;      sneak to "at", then repeat
//	dfx<CR>   delete through the next "x"
//	<C-o>     jump back
//
// <lt> writes a literal '<' and <Space> a space.
package key
