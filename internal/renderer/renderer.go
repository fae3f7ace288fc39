package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/sneak/internal/engine/buffer"
	"github.com/dshills/sneak/internal/renderer/backend"
	"github.com/dshills/sneak/internal/renderer/statusline"
)

// BufferReader provides read access to buffer content.
type BufferReader interface {
	LineText(line uint32) string
	LineCount() uint32
}

// Options configures the renderer.
type Options struct {
	// TabWidth is the distance between tab stops.
	TabWidth int

	// ScrollOff is the number of lines kept visible above and below the
	// cursor.
	ScrollOff int
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{TabWidth: 4, ScrollOff: 2}
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	status  *statusline.StatusLine
	opts    Options

	topLine uint32
	leftCol int
}

// New creates a renderer drawing on b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return &Renderer{
		backend: b,
		status:  statusline.New(),
		opts:    opts,
	}
}

// StatusLine returns the status line so callers can set mode and messages.
func (r *Renderer) StatusLine() *statusline.StatusLine {
	return r.status
}

// TopLine returns the first document line on screen.
func (r *Renderer) TopLine() uint32 {
	return r.topLine
}

// Render draws buf with the cursor at cur and flushes the backend.
func (r *Renderer) Render(buf BufferReader, cur buffer.Point) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	textRows := height - 1

	r.backend.Clear()
	r.scrollTo(cur, textRows)

	cursorX := r.displayColumn(buf.LineText(cur.Line), cur.Column)
	r.scrollHorizontally(cursorX, width)

	for row := 0; row < textRows; row++ {
		line := r.topLine + uint32(row)
		if line >= buf.LineCount() {
			r.backend.SetCell(0, row, backend.Cell{Rune: '~', Attrs: backend.AttrDim})
			continue
		}
		r.drawLine(row, buf.LineText(line), width)
	}

	r.status.Resize(width)
	r.status.SetPosition(cur.Line, cur.Column)
	r.status.Render(r.backend, height-1)

	if textRows > 0 {
		r.backend.ShowCursor(cursorX-r.leftCol, int(cur.Line-r.topLine))
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()
}

// scrollTo adjusts topLine so cur stays inside the scroll margins.
func (r *Renderer) scrollTo(cur buffer.Point, rows int) {
	if rows <= 0 {
		return
	}
	margin := uint32(r.opts.ScrollOff)
	if 2*int(margin) >= rows {
		margin = uint32((rows - 1) / 2)
	}

	if cur.Line < r.topLine+margin {
		if cur.Line < margin {
			r.topLine = 0
		} else {
			r.topLine = cur.Line - margin
		}
	}
	if bottom := r.topLine + uint32(rows) - 1; cur.Line+margin > bottom {
		r.topLine = cur.Line + margin + 1 - uint32(rows)
	}
}

func (r *Renderer) scrollHorizontally(cursorX, width int) {
	if cursorX < r.leftCol {
		r.leftCol = cursorX
	}
	if cursorX >= r.leftCol+width {
		r.leftCol = cursorX - width + 1
	}
}

// drawLine draws one document line at row, honoring the horizontal scroll.
func (r *Renderer) drawLine(row int, text string, width int) {
	x := 0
	r.walk(text, func(_ int, ch rune, w int) bool {
		screenX := x - r.leftCol
		x += w
		if screenX+w > width {
			return false
		}
		if screenX < 0 {
			return true
		}
		if ch == '\t' {
			for i := 0; i < w; i++ {
				r.backend.SetCell(screenX+i, row, backend.EmptyCell())
			}
			return true
		}
		r.backend.SetCell(screenX, row, backend.Cell{Rune: ch})
		return true
	})
}

// displayColumn returns the screen column of the character at col.
// A column past the end of the line maps to the column after it.
func (r *Renderer) displayColumn(text string, col uint32) int {
	x := 0
	r.walk(text, func(i int, _ rune, w int) bool {
		if uint32(i) >= col {
			return false
		}
		x += w
		return true
	})
	return x
}

// walk calls fn for every character of text with its rune index and
// display width, until fn returns false.
func (r *Renderer) walk(text string, fn func(i int, ch rune, w int) bool) {
	x := 0
	for i, ch := range []rune(text) {
		var w int
		if ch == '\t' {
			w = r.opts.TabWidth - x%r.opts.TabWidth
		} else {
			w = uniseg.StringWidth(string(ch))
			if w == 0 && ch >= ' ' {
				// Combining marks keep their own cell so rune columns line up.
				w = 1
			}
			if ch < ' ' {
				w = 1
				ch = '?'
			}
		}
		if !fn(i, ch, w) {
			return
		}
		x += w
	}
}
