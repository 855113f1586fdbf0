package main

func (m *model) handleScroll(cmd Command, speed int) bool {
	p := m.currentPainter()
	if p == nil {
		return false
	}
	before := p.ScrollOffset()
	switch cmd {
	case CmdScrollLeft:
		p.ScrollBy(-speed, 0)
	case CmdScrollRight:
		p.ScrollBy(speed, 0)
	case CmdScrollUp:
		p.ScrollBy(0, -speed)
	case CmdScrollDown:
		p.ScrollBy(0, speed)
	}
	return p.ScrollOffset() != before
}

func (m *model) switchPainter(delta int) {
	if len(m.painters) < 2 {
		return
	}
	m.current = (m.current + delta + len(m.painters)) % len(m.painters)
	m.pushPanel()
}

// painterSize is the terminal area given to the painter: everything but
// the tab bar, the panel line and the status line.
func (m *model) painterSize() (int, int) {
	return max(m.width, 0), max(m.height-3, 0)
}

func (m *model) resizePainters() {
	w, h := m.painterSize()
	for _, p := range m.painters {
		p.SetViewport(w, h)
	}
}
