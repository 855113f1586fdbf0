package main

type point struct {
	X, Y int
}

// Rect uses inclusive edges, so a single cell at (x, y) is Rect{x, y, x, y}.
type Rect struct {
	Left, Top, Right, Bottom int
}

func newRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func rectWithSize(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width - 1, Bottom: y + height - 1}
}

// boundingRect returns the normalized rectangle spanned by two points,
// whatever order they come in.
func boundingRect(a, b point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}

func (r Rect) Width() int  { return r.Right - r.Left + 1 }
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

func (r Rect) CenterX() int { return r.Left + (r.Right-r.Left)/2 }
func (r Rect) CenterY() int { return r.Top + (r.Bottom-r.Top)/2 }

func (r Rect) TopLeft() point { return point{r.Left, r.Top} }

// Valid reports whether the rectangle covers at least one cell.
func (r Rect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

func (r Rect) Contains(p point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

func (r Rect) Inset(n int) Rect {
	return Rect{Left: r.Left + n, Top: r.Top + n, Right: r.Right - n, Bottom: r.Bottom - n}
}

func (r Rect) Expand(n int) Rect {
	return r.Inset(-n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
