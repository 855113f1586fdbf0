package main

const defaultHistoryDepth = 50

// snapshotStack is a capped stack of canvas snapshots kept in a ring
// buffer. Pushing onto a full stack evicts the oldest entry.
type snapshotStack struct {
	buf  []*Canvas
	head int // index of the oldest entry
	n    int
}

func newSnapshotStack(depth int) *snapshotStack {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &snapshotStack{buf: make([]*Canvas, depth)}
}

func (s *snapshotStack) Len() int { return s.n }
func (s *snapshotStack) Cap() int { return len(s.buf) }

func (s *snapshotStack) Push(c *Canvas) {
	if s.n == len(s.buf) {
		s.buf[s.head] = nil
		s.head = (s.head + 1) % len(s.buf)
		s.n--
	}
	s.buf[(s.head+s.n)%len(s.buf)] = c
	s.n++
}

func (s *snapshotStack) Pop() (*Canvas, bool) {
	if s.n == 0 {
		return nil, false
	}
	i := (s.head + s.n - 1) % len(s.buf)
	c := s.buf[i]
	s.buf[i] = nil
	s.n--
	return c, true
}

func (s *snapshotStack) Clear() {
	for i := range s.buf {
		s.buf[i] = nil
	}
	s.head, s.n = 0, 0
}

// History keeps undo/redo snapshots of a canvas and a one-slot clipboard.
// Everything stored here is a private copy.
type History struct {
	undo      *snapshotStack
	redo      *snapshotStack
	clipboard *Canvas
}

func NewHistory(depth int) *History {
	return &History{
		undo: newSnapshotStack(depth),
		redo: newSnapshotStack(depth),
	}
}

func (h *History) Depth() int { return h.undo.Cap() }

func (h *History) UndoLen() int { return h.undo.Len() }
func (h *History) RedoLen() int { return h.redo.Len() }

func (h *History) CanUndo() bool { return h.undo.Len() > 0 }
func (h *History) CanRedo() bool { return h.redo.Len() > 0 }

// Record stores the canvas as it was before an edit and forgets the redo
// branch.
func (h *History) Record(before *Canvas) {
	h.undo.Push(before.Clone())
	h.redo.Clear()
}

// Undo returns the canvas to restore in place of current.
func (h *History) Undo(current *Canvas) (*Canvas, bool) {
	prev, ok := h.undo.Pop()
	if !ok {
		return nil, false
	}
	h.redo.Push(current.Clone())
	return prev, true
}

func (h *History) Redo(current *Canvas) (*Canvas, bool) {
	next, ok := h.redo.Pop()
	if !ok {
		return nil, false
	}
	h.undo.Push(current.Clone())
	return next, true
}

// Reset drops both stacks. The clipboard survives.
func (h *History) Reset() {
	h.undo.Clear()
	h.redo.Clear()
}

func (h *History) SetClipboard(c *Canvas) {
	h.clipboard = c.Clone()
}

// Clipboard returns a copy of the stored snapshot.
func (h *History) Clipboard() (*Canvas, bool) {
	if h.clipboard == nil {
		return nil, false
	}
	return h.clipboard.Clone(), true
}

func (h *History) HasClipboard() bool { return h.clipboard != nil }
