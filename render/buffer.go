package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of composed output
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a compositor of cells with a per-cell depth plane
// Depth holds the camera distance of the nearest surface written, +Inf when empty
type Buffer struct {
	cells  []Cell
	depth  []float64
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.depth = make([]float64, size)
	} else {
		b.cells = b.cells[:size]
		b.depth = b.depth[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBBackground, Bg: RGBBackground}
	b.depth[0] = math.Inf(1)
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the composed cell, zero Cell when out of bounds
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode, a zero rune keeps the existing glyph
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// Depth returns the stored depth, +Inf when out of bounds or empty
func (b *Buffer) Depth(x, y int) float64 {
	if !b.inBounds(x, y) {
		return math.Inf(1)
	}
	return b.depth[y*b.width+x]
}

// WriteDepth keeps the nearer of the stored and given depth
func (b *Buffer) WriteDepth(x, y int, d float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	if d < b.depth[idx] {
		b.depth[idx] = d
	}
}

// WriteString draws text left to right from x, clipped at the edge
func (b *Buffer) WriteString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg)
		x++
	}
}

// ===== OUTPUT =====

// Output is the part of tcell.Screen the buffer writes to
type Output interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

func toColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush writes the buffer to the screen and presents it
func (b *Buffer) Flush(screen Output) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(toColor(c.Fg)).Background(toColor(c.Bg))
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
