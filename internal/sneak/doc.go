// Package sneak implements the two-character search motion.
//
// A sneak is started by one of four trigger keys followed by two query
// characters:
//
//	f{c1}{c2}  jump forward to the next "c1c2"
//	F{c1}{c2}  jump backward to the previous "c1c2"
//	t{c1}{c2}  jump forward to just before the next "c1c2"
//	T{c1}{c2}  jump backward, landing relative to the previous "c1c2"
//
// Pressing Enter instead of the second character searches for the first
// character alone.
//
// The four variants are plain data. Each Variant has a Descriptor that
// fixes its scan direction, where the scan starts on the cursor line, and
// how far from the match the cursor lands with and without a pending
// operator. One search loop is shared by all of them.
//
// Every user-initiated motion records two replays in the Session before it
// searches: one repeating the same search (;) and one repeating its mirror
// image (,). Replays are flagged so that running them never records again.
//
// Configuration is always passed in through Settings; the package reads no
// global state.
package sneak
