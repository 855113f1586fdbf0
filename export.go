package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Character cell dimensions in the PNG export (pixels per character)
const (
	pngCharWidth  = 8.0
	pngCharHeight = 16.0
	pngFontSize   = 13.0
)

// exportCanvas picks the export format from the file extension.
func exportCanvas(c *Canvas, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return ExportPNG(c, filename)
	case ".txt", "":
		return ExportVisualTXT(c, filename)
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(filename))
	}
}

// ExportVisualTXT writes the glyphs of every row, without colors.
func ExportVisualTXT(c *Canvas, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range c.Lines() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return file.Close()
}

func ExportPNG(c *Canvas, filename string) error {
	if c.Width() == 0 || c.Height() == 0 {
		return fmt.Errorf("nothing to export")
	}

	imageWidth := int(float64(c.Width()) * pngCharWidth)
	imageHeight := int(float64(c.Height()) * pngCharHeight)
	dc := gg.NewContext(imageWidth, imageHeight)

	// Load font for glyph rendering
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Cell(x, y)
			drawCellPNG(dc, cell, x, y)
		}
	}

	return dc.SavePNG(filename)
}

func drawCellPNG(dc *gg.Context, cell Cell, x, y int) {
	px := float64(x) * pngCharWidth
	py := float64(y) * pngCharHeight

	// Background first
	dc.SetColor(cell.Bg.rgba())
	dc.DrawRectangle(px, py, pngCharWidth, pngCharHeight)
	dc.Fill()

	if cell.Ch == ' ' || cell.Ch == wideTail {
		return
	}
	dc.SetColor(cell.Fg.rgba())
	dc.DrawStringAnchored(string(cell.Ch), px+pngCharWidth/2, py+pngCharHeight/2, 0.5, 0.35)
	if cell.Flags&FlagUnderline != 0 {
		dc.SetLineWidth(1)
		dc.DrawLine(px, py+pngCharHeight-1, px+pngCharWidth, py+pngCharHeight-1)
		dc.Stroke()
	}
}

// copyTextToSystemClipboard puts plain text on the OS clipboard.
func copyTextToSystemClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}
