package main

import (
	"fmt"
	"log"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseDrag
	MouseRelease
)

// MouseEvent is a pointer event in widget coordinates.
type MouseEvent struct {
	Action MouseAction
	X, Y   int
}

type panState struct {
	active bool
	origin point
	scroll point
}

// Painter is the editing widget of one painting. It owns the canvas and
// everything that edits it.
type Painter struct {
	title    string
	filename string
	canvas   *Canvas
	sel      Selection
	obj      DrawingObject
	hist     *History
	bars     ScrollBars
	pan      panState
	dirty    bool
}

var desktopCell = newCell('░', DarkBlue, Black, FlagNone)

func NewPainter(title string, width, height, historyDepth int) *Painter {
	p := &Painter{
		title:  title,
		canvas: NewCanvas(width, height),
		obj:    NewDrawingObject(ToolSelection),
		hist:   NewHistory(historyDepth),
	}
	p.bars.Resize(width, height, 0, 0)
	return p
}

func (p *Painter) Title() string {
	if p.filename != "" {
		return p.filename
	}
	return p.title
}

func (p *Painter) Canvas() *Canvas              { return p.canvas }
func (p *Painter) Selection() Selection         { return p.sel }
func (p *Painter) DrawingObject() DrawingObject { return p.obj }
func (p *Painter) History() *History            { return p.hist }
func (p *Painter) ScrollOffset() point          { return p.bars.Offset() }
func (p *Painter) Dirty() bool                  { return p.dirty }
func (p *Painter) Filename() string             { return p.filename }

func (p *Painter) SetFilename(name string) { p.filename = name }

// SetViewport sets the widget size in terminal cells, scrollbars included.
func (p *Painter) SetViewport(width, height int) {
	p.bars.Resize(p.canvas.Width(), p.canvas.Height(), width, height)
}

func (p *Painter) toCanvas(ev MouseEvent) point {
	o := p.bars.Offset()
	return point{ev.X + o.X, ev.Y + o.Y}
}

// HandleMouse routes a pointer event and reports whether it was consumed.
// The scrollbars see it first, then the pan tool, then the selection; a
// release nobody wanted commits the current object.
func (p *Painter) HandleMouse(ev MouseEvent) bool {
	if p.bars.ProcessMouse(ev) {
		return true
	}
	if _, ok := p.obj.(*PanObject); ok && p.processPan(ev) {
		return true
	}

	cp := p.toCanvas(ev)
	wasCreating := p.sel.Creating()
	var consumed bool
	switch ev.Action {
	case MousePress:
		p.sel, consumed = p.sel.Press(cp)
	case MouseDrag:
		p.sel, consumed = p.sel.Drag(cp)
	case MouseRelease:
		p.sel, consumed = p.sel.Release(cp)
	}
	if consumed {
		if wasCreating && p.sel.Status() == selActive {
			p.obj.OnFinishSelection(p.canvas, p.sel.ContentRect())
		}
		return true
	}

	if ev.Action == MouseRelease {
		return p.WriteCurrentObject()
	}
	return false
}

func (p *Painter) processPan(ev MouseEvent) bool {
	switch ev.Action {
	case MousePress:
		p.pan = panState{
			active: true,
			origin: point{ev.X, ev.Y},
			scroll: p.bars.Offset(),
		}
		return true
	case MouseDrag:
		if !p.pan.active {
			return false
		}
		// content follows the pointer
		x := max(p.pan.scroll.X-(ev.X-p.pan.origin.X), 0)
		y := max(p.pan.scroll.Y-(ev.Y-p.pan.origin.Y), 0)
		p.bars.SetIndexes(x, y)
		return true
	case MouseRelease:
		if !p.pan.active {
			return false
		}
		p.pan = panState{}
		return true
	}
	return false
}

// ScrollBy moves the viewport by whole cells, clamped to the canvas.
func (p *Painter) ScrollBy(dx, dy int) {
	o := p.bars.Offset()
	p.bars.SetIndexes(o.X+dx, o.Y+dy)
}

// SetDrawingObject commits whatever the outgoing tool has pending, drops
// the selection and installs obj.
func (p *Painter) SetDrawingObject(obj DrawingObject) {
	if p.sel.Visible() {
		p.WriteCurrentObject()
	}
	p.sel = p.sel.Reset()
	p.pan = panState{}
	p.obj = obj
}

func (p *Painter) discardEdit() {
	p.obj.Clear()
	p.sel = p.sel.Reset()
}

// WriteCurrentObject paints the active object into the selection and
// records the previous canvas for undo. It is the only commit path for
// drawing tools.
func (p *Painter) WriteCurrentObject() bool {
	if !p.sel.Visible() {
		return false
	}
	p.hist.Record(p.canvas)
	p.obj.Paint(p.canvas, p.sel.ContentRect())
	p.discardEdit()
	p.dirty = true
	return true
}

func (p *Painter) CancelSelection() bool {
	if !p.sel.Visible() {
		return false
	}
	p.discardEdit()
	return true
}

func (p *Painter) Undo() bool {
	prev, ok := p.hist.Undo(p.canvas)
	if !ok {
		return false
	}
	p.replaceCanvas(prev)
	p.discardEdit()
	p.dirty = true
	return true
}

func (p *Painter) Redo() bool {
	next, ok := p.hist.Redo(p.canvas)
	if !ok {
		return false
	}
	p.replaceCanvas(next)
	p.discardEdit()
	p.dirty = true
	return true
}

func (p *Painter) replaceCanvas(c *Canvas) {
	p.canvas = c
	p.bars.Resize(c.Width(), c.Height(), p.bars.viewW, p.bars.viewH)
}

// CopySelection stores the cells under the selection in the clipboard.
// Only the selection tool copies.
func (p *Painter) CopySelection() bool {
	if _, ok := p.obj.(*SelectionObject); !ok || !p.sel.Visible() {
		return false
	}
	r := p.sel.ContentRect()
	if !r.Valid() {
		return false
	}
	p.hist.SetClipboard(p.canvas.CopyRegion(r))
	return true
}

// PasteFromClipboard writes the clipboard at the top-left corner of the
// selection. Cells falling off the canvas are dropped.
func (p *Painter) PasteFromClipboard() bool {
	clip, ok := p.hist.Clipboard()
	if !ok || !p.sel.Visible() {
		return false
	}
	r := p.sel.ContentRect()
	p.hist.Record(p.canvas)
	p.canvas.Blit(r.Left, r.Top, clip, p.canvas.Bounds())
	p.discardEdit()
	p.dirty = true
	return true
}

func (p *Painter) UpdateRectangleProperties(fore, back Color, style LineStyle) {
	if o, ok := p.obj.(*RectangleObject); ok {
		o.Fore, o.Back, o.LineStyle = fore, back, style
	}
}

func (p *Painter) UpdateFillRectangleProperties(fore, back Color, ch rune, flags CharFlags) {
	if o, ok := p.obj.(*FillRectangleObject); ok {
		o.Fore, o.Back, o.Ch, o.Flags = fore, back, ch, flags
	}
}

func (p *Painter) UpdateLineProperties(fore, back Color, style LineStyle, vertical bool) {
	if o, ok := p.obj.(*LineObject); ok {
		o.Fore, o.Back, o.LineStyle, o.Vertical = fore, back, style, vertical
	}
}

func (p *Painter) UpdateTextProperties(fore, back Color, flags CharFlags) {
	if o, ok := p.obj.(*TextObject); ok {
		o.Fore, o.Back, o.Flags = fore, back, flags
	}
}

func (p *Painter) textTarget() (*TextObject, bool) {
	o, ok := p.obj.(*TextObject)
	if !ok || !p.sel.Visible() {
		return nil, false
	}
	return o, true
}

// AcceptsText reports whether typed characters go into the text tool.
func (p *Painter) AcceptsText() bool {
	_, ok := p.textTarget()
	return ok
}

func (p *Painter) TypeText(s string) bool {
	o, ok := p.textTarget()
	if !ok {
		return false
	}
	o.Append(s)
	return true
}

func (p *Painter) Backspace() bool {
	o, ok := p.textTarget()
	if !ok {
		return false
	}
	return o.Backspace()
}

// SelectionText returns the glyphs under the selection, one line per row.
func (p *Painter) SelectionText() (string, bool) {
	if !p.sel.Visible() || !p.sel.ContentRect().Valid() {
		return "", false
	}
	region := p.canvas.CopyRegion(p.sel.ContentRect())
	return joinLines(region.Lines()), true
}

// Render composes what the widget shows: the visible part of the canvas
// with a live preview of the active object, the selection guide and the
// scrollbars.
func (p *Painter) Render() *Canvas {
	view := NewCanvas(p.bars.viewW, p.bars.viewH)
	view.Clear(desktopCell)

	work := p.canvas
	if p.sel.Visible() {
		work = p.canvas.Clone()
		p.obj.Paint(work, p.sel.ContentRect())
		p.sel.Paint(work)
	}

	o := p.bars.Offset()
	view.Blit(-o.X, -o.Y, work, p.bars.Area())
	p.bars.Paint(view)
	return view
}

func (p *Painter) Load(path string) error {
	c, err := LoadCanvas(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	p.canvas = c
	p.hist.Reset()
	p.discardEdit()
	p.pan = panState{}
	p.bars.Resize(c.Width(), c.Height(), p.bars.viewW, p.bars.viewH)
	p.bars.SetIndexes(0, 0)
	p.filename = path
	p.dirty = false
	log.Printf("loaded %s (%dx%d)", path, c.Width(), c.Height())
	return nil
}

func (p *Painter) Save(path string) error {
	if err := SaveCanvas(p.canvas, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	p.filename = path
	p.dirty = false
	log.Printf("saved %s", path)
	return nil
}
