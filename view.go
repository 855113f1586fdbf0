package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Bold(true)
	panelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var helpLines = []string{
	"scrawl help",
	"===========",
	"",
	"Mouse:",
	"------",
	"  Drag on empty canvas   Create a region",
	"  Drag inside region     Move the region",
	"  Drag a ■ marker        Resize from that corner or edge",
	"  Click outside region   Apply the current tool",
	"  Scrollbars             Click or drag to scroll",
	"",
	"Tools:",
	"------",
	"  F1  Selection   capture a region, move it, copy/paste it",
	"  F2  Pan         drag to scroll the view",
	"  F3  Rectangle   outline in the current line style",
	"  F4  Fill        fill with the current glyph",
	"  F5  Line        horizontal or vertical line through the middle",
	"  F6  Text        type text, wrapped to the region (Ctrl+J newline)",
	"",
	"Properties:",
	"-----------",
	"  F7/F8  Foreground / background color",
	"  F9     Line style",
	"  F10    Fill glyph",
	"  F11    Line orientation",
	"  F12    Bold / italic / underline",
	"",
	"Editing:",
	"--------",
	"  Enter            Apply the current tool",
	"  Esc              Cancel the region",
	"  Ctrl+Z           Undo",
	"  Ctrl+Y / Ctrl+R  Redo",
	"  Ctrl+C / Ctrl+V  Copy / paste the region (Selection tool)",
	"  Ctrl+T           Copy region text to the system clipboard",
	"  Ctrl+P           Paste system clipboard text into the Text tool",
	"  Arrows           Scroll",
	"",
	"Files:",
	"------",
	"  Ctrl+N  New painting        Tab / Shift+Tab  Switch painting",
	"  Ctrl+O  Open                Ctrl+W           Close painting",
	"  Ctrl+S  Save                Ctrl+E           Export (.png or .txt)",
	"  Ctrl+Q  Quit",
	"",
	"Press ? or Esc to close help",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	width := max(m.width, 1)
	_, painterHeight := m.painterSize()

	var result strings.Builder
	result.WriteString(m.renderTabBar(width))
	result.WriteString("\n")

	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		result.WriteString(m.renderFileList(width, painterHeight))
	} else if p := m.currentPainter(); p != nil {
		result.WriteString(renderCells(p.Render()))
	}
	result.WriteString("\n")
	result.WriteString(panelStyle.Render(padRight(m.panelLine(), width)))
	result.WriteString("\n")
	result.WriteString(m.statusLine(width))
	return result.String()
}

// renderCells turns a canvas into terminal lines, one styled run per
// stretch of cells sharing colors and flags.
func renderCells(c *Canvas) string {
	lines := make([]string, 0, c.Height())
	for y := 0; y < c.Height(); y++ {
		var line, run strings.Builder
		var runCell Cell
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(runCell.style().Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.Cell(x, y)
			if cell.Ch == wideTail {
				continue
			}
			if run.Len() > 0 && !cell.sameStyle(runCell) {
				flush()
			}
			runCell = cell
			run.WriteRune(cell.Ch)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (m model) renderTabBar(width int) string {
	var bar strings.Builder
	used := 0
	for i, p := range m.painters {
		name := p.Title()
		if p.Dirty() {
			name += "*"
		}
		name = " " + name + " "
		w := runewidth.StringWidth(name)
		if used+w > width {
			break
		}
		used += w
		if i == m.current {
			bar.WriteString(activeTabStyle.Render(name))
		} else {
			bar.WriteString(tabStyle.Render(name))
		}
	}
	bar.WriteString(strings.Repeat(" ", max(width-used, 0)))
	return bar.String()
}

func (m model) renderFileList(width, height int) string {
	lines := []string{"Open a painting:", strings.Repeat("─", width)}
	if len(m.fileList) == 0 {
		lines = append(lines, "(No "+canvasExt+" files found)")
	}
	maxFiles := max(height-2, 1)
	start := 0
	if m.selectedFile >= maxFiles {
		start = m.selectedFile - maxFiles + 1
	}
	for i := start; i < len(m.fileList) && i < start+maxFiles; i++ {
		name := strings.TrimSuffix(m.fileList[i], canvasExt)
		if i == m.selectedFile {
			lines = append(lines, "> "+name+" <")
		} else {
			lines = append(lines, "  "+name)
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func (m model) panelLine() string {
	p := m.currentPainter()
	if p == nil {
		return ""
	}
	pn := m.panel
	tool := p.DrawingObject().Tool()
	parts := []string{"Tool: " + tool.String()}
	switch tool {
	case ToolRectangle:
		parts = append(parts, "Fg: "+pn.fore.String(), "Bg: "+pn.back.String(), "Line: "+pn.lineStyle.String())
	case ToolFillRectangle:
		parts = append(parts, "Fg: "+pn.fore.String(), "Bg: "+pn.back.String(),
			fmt.Sprintf("Fill: %c", pn.fillGlyph()), "Flags: "+pn.flags().String())
	case ToolLine:
		dir := "horizontal"
		if pn.vertical {
			dir = "vertical"
		}
		parts = append(parts, "Fg: "+pn.fore.String(), "Bg: "+pn.back.String(), "Line: "+pn.lineStyle.String(), "Dir: "+dir)
	case ToolText:
		parts = append(parts, "Fg: "+pn.fore.String(), "Bg: "+pn.back.String(), "Flags: "+pn.flags().String())
	}
	sel := p.Selection()
	if sel.Visible() {
		r := sel.ContentRect()
		parts = append(parts, fmt.Sprintf("Region: %d,%d %dx%d", r.Left, r.Top, r.Width(), r.Height()))
		if o, ok := p.DrawingObject().(*SelectionObject); ok {
			if _, from, ok := o.Captured(); ok {
				parts = append(parts, fmt.Sprintf("From: %d,%d", from.X, from.Y))
			}
		}
	}
	h := p.History()
	if h.CanUndo() {
		parts = append(parts, fmt.Sprintf("Undo: %d/%d", h.UndoLen(), h.Depth()))
	}
	if h.CanRedo() {
		parts = append(parts, fmt.Sprintf("Redo: %d", h.RedoLen()))
	}
	return " " + strings.Join(parts, "  ")
}

func (m model) statusLine(width int) string {
	switch m.mode {
	case ModeFileInput:
		label := map[FileOperation]string{
			FileOpSave:   "Save as: ",
			FileOpOpen:   "Open: ",
			FileOpExport: "Export to (.png/.txt): ",
		}[m.fileOp]
		line := promptStyle.Render(label) + m.filename + "█"
		if m.errorMessage != "" {
			line += "  " + errorStyle.Render(m.errorMessage)
		}
		return line
	case ModeConfirm:
		var q string
		switch m.confirmAction {
		case ConfirmQuit:
			q = "There are unsaved changes. Quit anyway? (y/n)"
		case ConfirmCloseBuffer:
			q = "Painting has unsaved changes. Close it? (y/n)"
		case ConfirmOverwriteFile:
			q = fmt.Sprintf("%s exists. Overwrite? (y/n)", m.pendingPath)
		}
		return promptStyle.Render(padRight(q, width))
	}
	switch {
	case m.errorMessage != "":
		return errorStyle.Render(padRight(m.errorMessage, width))
	case m.successMessage != "":
		return successStyle.Render(padRight(m.successMessage, width))
	}
	return padRight("F1-F6 tools  Enter apply  Esc cancel  Ctrl+Z undo  ? help", width)
}

func (m model) helpView() string {
	height := max(m.height, 1)
	start := min(m.helpScroll, max(len(helpLines)-height, 0))
	end := min(start+height, len(helpLines))
	return strings.Join(helpLines[start:end], "\n")
}
