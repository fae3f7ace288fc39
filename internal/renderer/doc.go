// Package renderer draws a document, its cursor and a status line onto a
// backend.
//
// The layout is simple: every row but the last shows one document line,
// and the last row is the status line. The view scrolls vertically and
// horizontally to keep the cursor visible. Display widths come from
// uniseg, so wide characters take two columns; tabs expand to the next
// tab stop.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	term.Init()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(doc, cursorPos)
package renderer
