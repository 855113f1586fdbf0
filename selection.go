package main

type selectionStatus int

const (
	selIdle selectionStatus = iota
	selCreating
	selActive
	selDragging
	selResizeTopLeft
	selResizeTopRight
	selResizeBottomLeft
	selResizeBottomRight
	selResizeTop
	selResizeBottom
	selResizeLeft
	selResizeRight
)

var selectionStatusNames = [...]string{
	selIdle:              "idle",
	selCreating:          "creating",
	selActive:            "active",
	selDragging:          "dragging",
	selResizeTopLeft:     "resize-top-left",
	selResizeTopRight:    "resize-top-right",
	selResizeBottomLeft:  "resize-bottom-left",
	selResizeBottomRight: "resize-bottom-right",
	selResizeTop:         "resize-top",
	selResizeBottom:      "resize-bottom",
	selResizeLeft:        "resize-left",
	selResizeRight:       "resize-right",
}

func (s selectionStatus) String() string {
	if s < 0 || int(s) >= len(selectionStatusNames) {
		return "unknown"
	}
	return selectionStatusNames[s]
}

// handle is where a press lands relative to the border rect.
type handle int

const (
	handleOutside handle = iota
	handleInside
	handleTopLeft
	handleTopRight
	handleBottomLeft
	handleBottomRight
	handleTop
	handleBottom
	handleLeft
	handleRight
)

// minimum distance kept between a moving edge and its fixed opposite
const resizeGap = 2

// Selection is the pointer-driven rectangle editor. It is a plain value:
// every transition returns the next Selection together with whether the
// event was consumed.
type Selection struct {
	r      Rect
	status selectionStatus
	// anchor while creating, grab offset from the top-left while dragging
	start point
}

func (s Selection) Status() selectionStatus { return s.status }

func (s Selection) Visible() bool { return s.status != selIdle }

func (s Selection) Creating() bool { return s.status == selCreating }

// BorderRect is the manipulated rectangle, decorative margin included.
func (s Selection) BorderRect() Rect { return s.r }

// ContentRect is the border rect inset by one cell on every side: the
// area drawing operations act on.
func (s Selection) ContentRect() Rect { return s.r.Inset(1) }

func (s Selection) Reset() Selection {
	return Selection{}
}

func (s Selection) hitTest(p point) handle {
	r := s.r
	if !r.Contains(p) {
		return handleOutside
	}
	switch {
	case p.X == r.Left && p.Y == r.Top:
		return handleTopLeft
	case p.X == r.Right && p.Y == r.Top:
		return handleTopRight
	case p.X == r.Left && p.Y == r.Bottom:
		return handleBottomLeft
	case p.X == r.Right && p.Y == r.Bottom:
		return handleBottomRight
	case p.X == r.CenterX() && p.Y == r.Top:
		return handleTop
	case p.X == r.CenterX() && p.Y == r.Bottom:
		return handleBottom
	case p.Y == r.CenterY() && p.X == r.Left:
		return handleLeft
	case p.Y == r.CenterY() && p.X == r.Right:
		return handleRight
	}
	return handleInside
}

var handleStatus = map[handle]selectionStatus{
	handleTopLeft:     selResizeTopLeft,
	handleTopRight:    selResizeTopRight,
	handleBottomLeft:  selResizeBottomLeft,
	handleBottomRight: selResizeBottomRight,
	handleTop:         selResizeTop,
	handleBottom:      selResizeBottom,
	handleLeft:        selResizeLeft,
	handleRight:       selResizeRight,
}

func (s Selection) Press(p point) (Selection, bool) {
	switch s.status {
	case selIdle:
		return Selection{
			r:      newRect(p.X, p.Y, p.X, p.Y),
			status: selCreating,
			start:  p,
		}, true
	case selActive:
		switch h := s.hitTest(p); h {
		case handleOutside:
			return s, false
		case handleInside:
			s.status = selDragging
			s.start = point{p.X - s.r.Left, p.Y - s.r.Top}
			return s, true
		default:
			s.status = handleStatus[h]
			return s, true
		}
	}
	return s, false
}

func (s Selection) Drag(p point) (Selection, bool) {
	r := s.r
	switch s.status {
	case selCreating:
		s.r = boundingRect(s.start, p)
	case selDragging:
		s.r = rectWithSize(p.X-s.start.X, p.Y-s.start.Y, r.Width(), r.Height())
	case selResizeTopLeft:
		s.r = newRect(min(p.X, r.Right-resizeGap), min(p.Y, r.Bottom-resizeGap), r.Right, r.Bottom)
	case selResizeTopRight:
		s.r = newRect(r.Left, min(p.Y, r.Bottom-resizeGap), max(p.X, r.Left+resizeGap), r.Bottom)
	case selResizeBottomLeft:
		s.r = newRect(min(p.X, r.Right-resizeGap), r.Top, r.Right, max(p.Y, r.Top+resizeGap))
	case selResizeBottomRight:
		s.r = newRect(r.Left, r.Top, max(p.X, r.Left+resizeGap), max(p.Y, r.Top+resizeGap))
	case selResizeTop:
		s.r = newRect(r.Left, min(p.Y, r.Bottom-resizeGap), r.Right, r.Bottom)
	case selResizeBottom:
		s.r = newRect(r.Left, r.Top, r.Right, max(p.Y, r.Top+resizeGap))
	case selResizeLeft:
		s.r = newRect(min(p.X, r.Right-resizeGap), r.Top, r.Right, r.Bottom)
	case selResizeRight:
		s.r = newRect(r.Left, r.Top, max(p.X, r.Left+resizeGap), r.Bottom)
	default:
		return s, false
	}
	return s, true
}

func (s Selection) Release(p point) (Selection, bool) {
	switch s.status {
	case selIdle, selActive:
		return s, false
	case selCreating:
		// the dragged area becomes the content rect
		s.r = s.r.Expand(1)
	}
	s.status = selActive
	return s, true
}

var (
	guideCell  = newCell('.', Gray, Black, FlagNone)
	markerCell = newCell('■', Yellow, Black, FlagNone)
)

// Paint draws the dotted guide and the eight grab markers. It is purely
// decorative and is meant for a render copy of the canvas.
func (s Selection) Paint(c *Canvas) {
	if !s.Visible() {
		return
	}
	r := s.r
	c.FillHorizontalLine(r.Left, r.Top, r.Right, guideCell)
	c.FillHorizontalLine(r.Left, r.Bottom, r.Right, guideCell)
	c.FillVerticalLine(r.Left, r.Top, r.Bottom, guideCell)
	c.FillVerticalLine(r.Right, r.Top, r.Bottom, guideCell)

	for _, p := range []point{
		{r.Left, r.Top}, {r.Right, r.Top}, {r.Left, r.Bottom}, {r.Right, r.Bottom},
		{r.CenterX(), r.Top}, {r.CenterX(), r.Bottom}, {r.Left, r.CenterY()}, {r.Right, r.CenterY()},
	} {
		c.SetCell(p.X, p.Y, markerCell)
	}
}
