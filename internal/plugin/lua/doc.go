// Package lua runs user scripts in a sandboxed Lua state.
//
// Only the base, table, string and math libraries are opened. File
// loading, code loading and module loading are removed. Scripts talk to
// the editor through the global sneak module:
//
//	sneak.settings()             -> {enabled=, useIgnorecaseAndSmartcase=, ignorecase=, smartcase=}
//	sneak.set(name, value)       -- name is a setting path or short name
//	sneak.find(query[, variant]) -> line, col | nil   (does not move)
//	sneak.jump(query[, variant]) -> line, col | nil   (moves the cursor)
//	sneak.position()             -> line, col
//
// Positions are zero-based, as everywhere else in the editor. The variant
// is a name ("forward", "tillBackward") or a trigger key ("f", "T") and
// defaults to forward. A query is one or two characters.
//
// Example init.lua:
//
//	sneak.set("enabled", true)
//	sneak.set("ignorecase", true)
//	print("sneak ready")
package lua
