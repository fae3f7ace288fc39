// Package sneak provides the handler for two-character search motions.
//
// Actions:
//   - sneak.forward (f), sneak.backward (F)
//   - sneak.tillForward (t), sneak.tillBackward (T)
//   - sneak.repeat (;) replays the last sneak in its direction
//   - sneak.repeatReverse (,) replays it in the opposite direction
//
// The query travels in Action.Args.Keys as [trigger, c1, c2]. When an
// operator is pending the handler returns the operator range instead of
// moving the cursor and the dispatcher forwards it to the operator.
package sneak
