package main

import (
	"image/color"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the 16 console colors, in ANSI palette order.
type Color uint8

const (
	Black Color = iota
	DarkRed
	DarkGreen
	Olive
	DarkBlue
	Magenta
	Teal
	Silver
	Gray
	Red
	Green
	Yellow
	Blue
	Pink
	Aqua
	White
)

const numColors = 16

var colorNames = [numColors]string{
	"black", "darkred", "darkgreen", "olive", "darkblue", "magenta", "teal", "silver",
	"gray", "red", "green", "yellow", "blue", "pink", "aqua", "white",
}

// RGB values used for PNG export, close to the xterm defaults.
var colorRGB = [numColors]color.RGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

func (c Color) String() string {
	if int(c) < numColors {
		return colorNames[c]
	}
	return "color(" + strconv.Itoa(int(c)) + ")"
}

func (c Color) rgba() color.RGBA {
	return colorRGB[int(c)%numColors]
}

func (c Color) termColor() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c) % numColors))
}

func (c Color) next() Color {
	return (c + 1) % numColors
}

type CharFlags uint8

const (
	FlagBold CharFlags = 1 << iota
	FlagItalic
	FlagUnderline

	FlagNone CharFlags = 0
)

func (f CharFlags) String() string {
	if f == FlagNone {
		return "none"
	}
	s := ""
	if f&FlagBold != 0 {
		s += "B"
	}
	if f&FlagItalic != 0 {
		s += "I"
	}
	if f&FlagUnderline != 0 {
		s += "U"
	}
	return s
}

// Cell is one grid position.
type Cell struct {
	Ch    rune
	Fg    Color
	Bg    Color
	Flags CharFlags
}

var blankCell = Cell{Ch: ' ', Fg: White, Bg: Black}

func newCell(ch rune, fg, bg Color, flags CharFlags) Cell {
	return Cell{Ch: ch, Fg: fg, Bg: bg, Flags: flags}
}

func (c Cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(c.Fg.termColor()).Background(c.Bg.termColor())
	if c.Flags&FlagBold != 0 {
		s = s.Bold(true)
	}
	if c.Flags&FlagItalic != 0 {
		s = s.Italic(true)
	}
	if c.Flags&FlagUnderline != 0 {
		s = s.Underline(true)
	}
	return s
}

// sameStyle reports whether two cells can be rendered in one styled run.
func (c Cell) sameStyle(o Cell) bool {
	return c.Fg == o.Fg && c.Bg == o.Bg && c.Flags == o.Flags
}

type LineStyle int

const (
	LineSingle LineStyle = iota
	LineDouble
	LineThick
	LineRounded
	LineAscii
	LineAsciiRound
	numLineStyles
)

type lineGlyphs struct {
	horizontal, vertical                       rune
	topLeft, topRight, bottomLeft, bottomRight rune
}

var lineStyleGlyphs = [numLineStyles]lineGlyphs{
	LineSingle:     {'─', '│', '┌', '┐', '└', '┘'},
	LineDouble:     {'═', '║', '╔', '╗', '╚', '╝'},
	LineThick:      {'━', '┃', '┏', '┓', '┗', '┛'},
	LineRounded:    {'─', '│', '╭', '╮', '╰', '╯'},
	LineAscii:      {'-', '|', '+', '+', '+', '+'},
	LineAsciiRound: {'-', '|', '/', '\\', '\\', '/'},
}

var lineStyleNames = [numLineStyles]string{"single", "double", "thick", "rounded", "ascii", "asciiround"}

func (l LineStyle) glyphs() lineGlyphs {
	if l < 0 || l >= numLineStyles {
		return lineStyleGlyphs[LineSingle]
	}
	return lineStyleGlyphs[l]
}

func (l LineStyle) String() string {
	if l < 0 || l >= numLineStyles {
		return "single"
	}
	return lineStyleNames[l]
}
