package main

import (
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"
)

func (m *model) currentPainter() *Painter {
	if len(m.painters) == 0 {
		return nil
	}
	return m.painters[m.current]
}

func (m *model) addPainter(p *Painter) {
	p.SetViewport(m.painterSize())
	m.painters = append(m.painters, p)
	m.current = len(m.painters) - 1
	m.pushPanel()
}

func (m *model) newPainter() *Painter {
	m.paintingIndex++
	title := "Painting─" + strconv.Itoa(m.paintingIndex)
	return NewPainter(title, m.config.Width, m.config.Height, m.config.HistoryDepth)
}

func joinLines(lines []string) string {
	// drop trailing empty rows
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// padRight pads s with spaces to width terminal columns, truncating when
// it is wider.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "<") &&
		(strings.Contains(t, "<html") || strings.Contains(t, "<body") || strings.Contains(t, "<div"))
}

// cleanClipboardText turns whatever the system clipboard holds into plain
// text the text tool can take: markup is dropped, line endings become
// '\n', tabs become spaces and other control characters go away.
func cleanClipboardText(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripHTML(text)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r >= 32 {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// stripRTF keeps the text runs of an RTF document. Control words are
// skipped except \par and \line, which become newlines.
func stripRTF(text string) string {
	var result strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}', '\n', '\r':
			continue
		case '\\':
		default:
			result.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		if next == '\\' || next == '{' || next == '}' {
			result.WriteRune(next)
			i++
			continue
		}
		if next == '\'' && i+3 < len(runes) {
			if v, err := strconv.ParseUint(string(runes[i+2:i+4]), 16, 8); err == nil {
				result.WriteRune(rune(v))
				i += 3
				continue
			}
		}
		// control word: letters, optional numeric parameter, optional space
		j := i + 1
		for j < len(runes) && isASCIILetter(runes[j]) {
			j++
		}
		word := string(runes[i+1 : j])
		for j < len(runes) && (runes[j] == '-' || (runes[j] >= '0' && runes[j] <= '9')) {
			j++
		}
		if j < len(runes) && runes[j] == ' ' {
			j++
		}
		if word == "par" || word == "line" {
			result.WriteByte('\n')
		}
		i = j - 1
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return htmlEntities.Replace(result.String())
}
