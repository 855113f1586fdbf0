package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const codecHeader = "SCRAWL"

var errInvalidFormat = errors.New("invalid file format")

// SaveCanvas writes c as text: a header, the size, then one line per
// non-blank cell grouped under its row.
func SaveCanvas(c *Canvas, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n", codecHeader)
	fmt.Fprintf(w, "SIZE:%d,%d\n", c.Width(), c.Height())
	for y := 0; y < c.Height(); y++ {
		wroteRow := false
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Cell(x, y)
			if cell == blankCell {
				continue
			}
			if !wroteRow {
				fmt.Fprintf(w, "ROW:%d\n", y)
				wroteRow = true
			}
			fmt.Fprintf(w, "%d,%d,%d,%d,%d\n", x, cell.Ch, cell.Fg, cell.Bg, cell.Flags)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func LoadCanvas(filename string) (*Canvas, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Read header
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != codecHeader {
		return nil, fmt.Errorf("%w: missing %s header", errInvalidFormat, codecHeader)
	}

	// Read size
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing size", errInvalidFormat)
	}
	sizeStr, ok := strings.CutPrefix(scanner.Text(), "SIZE:")
	if !ok {
		return nil, fmt.Errorf("%w: missing size", errInvalidFormat)
	}
	size, err := parseInts(sizeStr, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid size: %v", errInvalidFormat, err)
	}
	if size[0] <= 0 || size[1] <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", errInvalidFormat, size[0], size[1])
	}
	if size[0] > maxCanvasSide || size[1] > maxCanvasSide {
		return nil, fmt.Errorf("%w: size %dx%d too large", errInvalidFormat, size[0], size[1])
	}

	c := NewCanvas(size[0], size[1])
	row := -1
	for line := 2; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if rowStr, ok := strings.CutPrefix(text, "ROW:"); ok {
			row, err = strconv.Atoi(rowStr)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: invalid row: %v", errInvalidFormat, line+1, err)
			}
			continue
		}
		if row < 0 {
			return nil, fmt.Errorf("%w: line %d: cell before any row", errInvalidFormat, line+1)
		}
		v, err := parseInts(text, 5)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errInvalidFormat, line+1, err)
		}
		c.SetCell(v[0], row, Cell{
			Ch:    rune(v[1]),
			Fg:    Color(v[2] % numColors),
			Bg:    Color(v[3] % numColors),
			Flags: CharFlags(v[4]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(parts))
	}
	out := make([]int, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative value %d", v)
		}
		out[i] = v
	}
	return out, nil
}
