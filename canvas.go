package main

import (
	"strings"
)

// wideTail marks the cell covered by the right half of a double-width glyph.
const wideTail rune = 0

// Canvas is a fixed-size grid of cells addressed from the top-left corner.
// Reads outside the grid report no cell; writes outside it are dropped.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear(blankCell)
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Bounds() Rect {
	return rectWithSize(0, 0, c.width, c.height)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) Cell(x, y int) (Cell, bool) {
	if !c.inside(x, y) {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}

func (c *Canvas) SetCell(x, y int, cell Cell) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell
}

func (c *Canvas) Clear(cell Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Clone returns a deep copy that shares no storage with c.
func (c *Canvas) Clone() *Canvas {
	cells := make([]Cell, len(c.cells))
	copy(cells, c.cells)
	return &Canvas{width: c.width, height: c.height, cells: cells}
}

// Equal reports whether both canvases have the same size and cells.
func (c *Canvas) Equal(o *Canvas) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.width != o.width || c.height != o.height {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// CopyRegion returns a new canvas sized to r holding the cells of r.
// Positions of r that fall outside c are filled with the blank cell.
func (c *Canvas) CopyRegion(r Rect) *Canvas {
	if !r.Valid() {
		return NewCanvas(0, 0)
	}
	out := NewCanvas(r.Width(), r.Height())
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			if cell, ok := c.Cell(x, y); ok {
				out.SetCell(x-r.Left, y-r.Top, cell)
			}
		}
	}
	return out
}

// Blit writes src with its top-left at (x, y). Only cells that land inside
// clip and inside c are written.
func (c *Canvas) Blit(x, y int, src *Canvas, clip Rect) {
	if src == nil || !clip.Valid() {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			p := point{x + sx, y + sy}
			if !clip.Contains(p) {
				continue
			}
			c.SetCell(p.X, p.Y, src.cells[sy*src.width+sx])
		}
	}
}

func (c *Canvas) FillRect(r Rect, cell Cell) {
	for y := r.Top; y <= r.Bottom; y++ {
		for x := r.Left; x <= r.Right; x++ {
			c.SetCell(x, y, cell)
		}
	}
}

func (c *Canvas) FillHorizontalLine(left, y, right int, cell Cell) {
	for x := left; x <= right; x++ {
		c.SetCell(x, y, cell)
	}
}

func (c *Canvas) FillVerticalLine(x, top, bottom int, cell Cell) {
	for y := top; y <= bottom; y++ {
		c.SetCell(x, y, cell)
	}
}

// DrawRect draws the outline of r with the glyphs of style.
func (c *Canvas) DrawRect(r Rect, style LineStyle, fg, bg Color) {
	if !r.Valid() {
		return
	}
	g := style.glyphs()
	cell := func(ch rune) Cell { return newCell(ch, fg, bg, FlagNone) }

	c.FillHorizontalLine(r.Left, r.Top, r.Right, cell(g.horizontal))
	c.FillHorizontalLine(r.Left, r.Bottom, r.Right, cell(g.horizontal))
	c.FillVerticalLine(r.Left, r.Top, r.Bottom, cell(g.vertical))
	c.FillVerticalLine(r.Right, r.Top, r.Bottom, cell(g.vertical))

	// Degenerate rectangles collapse to a line
	if r.Width() == 1 || r.Height() == 1 {
		return
	}
	c.SetCell(r.Left, r.Top, cell(g.topLeft))
	c.SetCell(r.Right, r.Top, cell(g.topRight))
	c.SetCell(r.Left, r.Bottom, cell(g.bottomLeft))
	c.SetCell(r.Right, r.Bottom, cell(g.bottomRight))
}

// Lines returns the glyphs of every row, trailing blanks trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var sb strings.Builder
		for x := 0; x < c.width; x++ {
			if ch := c.cells[y*c.width+x].Ch; ch != wideTail {
				sb.WriteRune(ch)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}
