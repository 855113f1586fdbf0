package main

type scrollAxis int

const (
	axisNone scrollAxis = iota
	axisHorizontal
	axisVertical
)

// ScrollBars tracks the viewport offset into the canvas. The widget keeps
// its last column for the vertical bar and its last row for the
// horizontal bar; the remaining area shows the canvas.
type ScrollBars struct {
	contentW, contentH int
	viewW, viewH       int
	x, y               int
	dragging           scrollAxis
	// set while a press that started on the bars is held
	captured bool
}

var (
	scrollTrackCell  = newCell('░', Gray, Black, FlagNone)
	scrollThumbCell  = newCell('█', Silver, Black, FlagNone)
	scrollCornerCell = newCell('┘', Gray, Black, FlagNone)
)

func (s *ScrollBars) Resize(contentW, contentH, viewW, viewH int) {
	s.contentW, s.contentH = contentW, contentH
	s.viewW, s.viewH = max(viewW, 0), max(viewH, 0)
	s.SetIndexes(s.x, s.y)
}

// Area is the part of the widget the canvas is drawn into, in widget
// coordinates.
func (s *ScrollBars) Area() Rect {
	return rectWithSize(0, 0, max(s.viewW-1, 0), max(s.viewH-1, 0))
}

func (s *ScrollBars) maxX() int { return max(s.contentW-s.Area().Width(), 0) }
func (s *ScrollBars) maxY() int { return max(s.contentH-s.Area().Height(), 0) }

func (s *ScrollBars) Offset() point { return point{s.x, s.y} }

func (s *ScrollBars) SetIndexes(x, y int) {
	s.x = clamp(x, 0, s.maxX())
	s.y = clamp(y, 0, s.maxY())
}

// trackToOffset maps a position on a bar of the given length to an offset.
func trackToOffset(pos, length, maxOffset int) int {
	if length <= 1 {
		return 0
	}
	return clamp(pos, 0, length-1) * maxOffset / (length - 1)
}

func offsetToTrack(offset, length, maxOffset int) int {
	if maxOffset <= 0 || length <= 1 {
		return 0
	}
	return offset * (length - 1) / maxOffset
}

func (s *ScrollBars) scrollTo(axis scrollAxis, ev MouseEvent) {
	area := s.Area()
	switch axis {
	case axisHorizontal:
		s.SetIndexes(trackToOffset(ev.X, area.Width(), s.maxX()), s.y)
	case axisVertical:
		s.SetIndexes(s.x, trackToOffset(ev.Y, area.Height(), s.maxY()))
	}
}

func (s *ScrollBars) hit(ev MouseEvent) (scrollAxis, bool) {
	if s.viewW == 0 || s.viewH == 0 {
		return axisNone, false
	}
	lastCol, lastRow := s.viewW-1, s.viewH-1
	switch {
	case ev.X == lastCol && ev.Y == lastRow:
		return axisNone, true
	case ev.Y == lastRow && ev.X >= 0 && ev.X < lastCol:
		return axisHorizontal, true
	case ev.X == lastCol && ev.Y >= 0 && ev.Y < lastRow:
		return axisVertical, true
	}
	return axisNone, false
}

// ProcessMouse handles clicks and drags on the bars and reports whether
// the event was consumed.
func (s *ScrollBars) ProcessMouse(ev MouseEvent) bool {
	switch ev.Action {
	case MousePress:
		axis, ok := s.hit(ev)
		if !ok {
			return false
		}
		s.captured = true
		s.dragging = axis
		s.scrollTo(axis, ev)
		return true
	case MouseDrag:
		if !s.captured {
			return false
		}
		s.scrollTo(s.dragging, ev)
		return true
	case MouseRelease:
		if !s.captured {
			return false
		}
		s.captured = false
		s.dragging = axisNone
		return true
	}
	return false
}

func (s *ScrollBars) Paint(view *Canvas) {
	if s.viewW == 0 || s.viewH == 0 {
		return
	}
	area := s.Area()
	lastCol, lastRow := s.viewW-1, s.viewH-1

	view.FillHorizontalLine(0, lastRow, lastCol-1, scrollTrackCell)
	view.FillVerticalLine(lastCol, 0, lastRow-1, scrollTrackCell)
	view.SetCell(lastCol, lastRow, scrollCornerCell)

	if area.Width() > 0 {
		view.SetCell(offsetToTrack(s.x, area.Width(), s.maxX()), lastRow, scrollThumbCell)
	}
	if area.Height() > 0 {
		view.SetCell(lastCol, offsetToTrack(s.y, area.Height(), s.maxY()), scrollThumbCell)
	}
}
