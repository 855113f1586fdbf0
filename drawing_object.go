package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

type Tool int

const (
	ToolSelection Tool = iota
	ToolPan
	ToolRectangle
	ToolFillRectangle
	ToolLine
	ToolText
	numTools
)

var toolNames = [numTools]string{"Selection", "Pan", "Rectangle", "Fill", "Line", "Text"}

func (t Tool) String() string {
	if t < 0 || t >= numTools {
		return "Unknown"
	}
	return toolNames[t]
}

// DrawingObject is the active tool together with its parameters. The set
// of implementations is closed: every variant lives in this file.
type DrawingObject interface {
	// Paint renders the object into r. It never writes outside r.
	Paint(c *Canvas, r Rect)
	// Clear drops transient state but keeps colors and styles.
	Clear()
	// OnFinishSelection runs once, right after a new region is created.
	OnFinishSelection(c *Canvas, r Rect)
	Tool() Tool

	drawingObject()
}

var (
	_ DrawingObject = (*SelectionObject)(nil)
	_ DrawingObject = (*PanObject)(nil)
	_ DrawingObject = (*RectangleObject)(nil)
	_ DrawingObject = (*FillRectangleObject)(nil)
	_ DrawingObject = (*LineObject)(nil)
	_ DrawingObject = (*TextObject)(nil)
)

func NewDrawingObject(t Tool) DrawingObject {
	switch t {
	case ToolPan:
		return &PanObject{}
	case ToolRectangle:
		return &RectangleObject{Fore: White, Back: Black, LineStyle: LineSingle}
	case ToolFillRectangle:
		return &FillRectangleObject{Fore: White, Back: Black, Ch: '█'}
	case ToolLine:
		return &LineObject{Fore: White, Back: Black, LineStyle: LineSingle}
	case ToolText:
		return &TextObject{Fore: White, Back: Black}
	default:
		return &SelectionObject{}
	}
}

// SelectionObject captures the cells under a freshly created region so
// they can float along while the region is dragged.
type SelectionObject struct {
	captured *Canvas
	anchor   point
}

func (o *SelectionObject) Tool() Tool     { return ToolSelection }
func (o *SelectionObject) drawingObject() {}

func (o *SelectionObject) Captured() (*Canvas, point, bool) {
	return o.captured, o.anchor, o.captured != nil
}

func (o *SelectionObject) Paint(c *Canvas, r Rect) {
	if o.captured == nil || !r.Valid() {
		return
	}
	c.Blit(r.Left, r.Top, o.captured, r)
}

func (o *SelectionObject) Clear() {
	o.captured = nil
	o.anchor = point{}
}

func (o *SelectionObject) OnFinishSelection(c *Canvas, r Rect) {
	o.captured = c.CopyRegion(r)
	o.anchor = r.TopLeft()
}

// PanObject turns drags into viewport scrolling.
type PanObject struct{}

func (o *PanObject) Tool() Tool                          { return ToolPan }
func (o *PanObject) drawingObject()                      {}
func (o *PanObject) Paint(c *Canvas, r Rect)             {}
func (o *PanObject) Clear()                              {}
func (o *PanObject) OnFinishSelection(c *Canvas, r Rect) {}

type RectangleObject struct {
	Fore, Back Color
	LineStyle  LineStyle
}

func (o *RectangleObject) Tool() Tool                          { return ToolRectangle }
func (o *RectangleObject) drawingObject()                      {}
func (o *RectangleObject) Clear()                              {}
func (o *RectangleObject) OnFinishSelection(c *Canvas, r Rect) {}

func (o *RectangleObject) Paint(c *Canvas, r Rect) {
	c.DrawRect(r, o.LineStyle, o.Fore, o.Back)
}

type FillRectangleObject struct {
	Fore, Back Color
	Ch         rune
	Flags      CharFlags
}

func (o *FillRectangleObject) Tool() Tool                          { return ToolFillRectangle }
func (o *FillRectangleObject) drawingObject()                      {}
func (o *FillRectangleObject) Clear()                              {}
func (o *FillRectangleObject) OnFinishSelection(c *Canvas, r Rect) {}

func (o *FillRectangleObject) Paint(c *Canvas, r Rect) {
	c.FillRect(r, newCell(o.Ch, o.Fore, o.Back, o.Flags))
}

// LineObject draws a straight line through the middle of the region.
type LineObject struct {
	Fore, Back Color
	LineStyle  LineStyle
	Vertical   bool
}

func (o *LineObject) Tool() Tool                          { return ToolLine }
func (o *LineObject) drawingObject()                      {}
func (o *LineObject) Clear()                              {}
func (o *LineObject) OnFinishSelection(c *Canvas, r Rect) {}

func (o *LineObject) Paint(c *Canvas, r Rect) {
	if !r.Valid() {
		return
	}
	g := o.LineStyle.glyphs()
	if o.Vertical {
		c.FillVerticalLine(r.CenterX(), r.Top, r.Bottom, newCell(g.vertical, o.Fore, o.Back, FlagNone))
		return
	}
	c.FillHorizontalLine(r.Left, r.CenterY(), r.Right, newCell(g.horizontal, o.Fore, o.Back, FlagNone))
}

// TextObject holds text typed into the region, wrapped to its width.
type TextObject struct {
	Fore, Back Color
	Flags      CharFlags
	text       []rune
}

func (o *TextObject) Tool() Tool                          { return ToolText }
func (o *TextObject) drawingObject()                      {}
func (o *TextObject) OnFinishSelection(c *Canvas, r Rect) {}

func (o *TextObject) Text() string { return string(o.text) }

func (o *TextObject) Append(s string) { o.text = append(o.text, []rune(s)...) }

func (o *TextObject) Backspace() bool {
	if len(o.text) == 0 {
		return false
	}
	o.text = o.text[:len(o.text)-1]
	return true
}

func (o *TextObject) Clear() { o.text = o.text[:0] }

// wrapText breaks s into lines no wider than width, preferring word
// boundaries and hard-breaking words that do not fit.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

func (o *TextObject) Paint(c *Canvas, r Rect) {
	if !r.Valid() || len(o.text) == 0 {
		return
	}
	for i, line := range wrapText(string(o.text), r.Width()) {
		y := r.Top + i
		if y > r.Bottom {
			break
		}
		x := r.Left
		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			if x+w-1 > r.Right {
				break
			}
			c.SetCell(x, y, newCell(ch, o.Fore, o.Back, o.Flags))
			if w == 2 {
				c.SetCell(x+1, y, newCell(wideTail, o.Fore, o.Back, o.Flags))
			}
			x += w
		}
	}
}
