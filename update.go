package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	canvasExt   = ".scrawl"
	wheelScroll = 3
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePainters()
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg)
			return m, nil
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

// translateMouse converts a terminal mouse message into painter
// coordinates; the painter starts below the tab bar. Only the left
// button starts a gesture.
func translateMouse(msg tea.MouseMsg) (MouseEvent, bool) {
	ev := MouseEvent{X: msg.X, Y: msg.Y - 1}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = MousePress
	case tea.MouseActionMotion:
		ev.Action = MouseDrag
	case tea.MouseActionRelease:
		ev.Action = MouseRelease
	default:
		return ev, false
	}
	return ev, true
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := m.currentPainter()
	if p == nil {
		return
	}
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.ScrollBy(0, -wheelScroll)
			return
		case tea.MouseButtonWheelDown:
			p.ScrollBy(0, wheelScroll)
			return
		}
	}
	ev, ok := translateMouse(msg)
	if !ok {
		return
	}
	switch ev.Action {
	case MousePress:
		_, h := m.painterSize()
		if ev.Y < 0 || ev.Y >= h {
			return
		}
		m.mouseDown = true
	case MouseDrag:
		if !m.mouseDown {
			return
		}
	case MouseRelease:
		if !m.mouseDown {
			return
		}
		m.mouseDown = false
	}
	p.HandleMouse(ev)
}

func (m *model) handleHelpKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "down", "j":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "up", "k":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.currentPainter()
	if p == nil {
		return m, nil
	}
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	// typing goes to the text tool while it has a region
	if p.AcceptsText() {
		switch {
		case msg.Type == tea.KeyRunes:
			p.TypeText(string(msg.Runes))
			return m, nil
		case msg.Type == tea.KeySpace:
			p.TypeText(" ")
			return m, nil
		case msg.Type == tea.KeyBackspace:
			p.Backspace()
			return m, nil
		case key == "ctrl+j":
			p.TypeText("\n")
			return m, nil
		}
	}

	if cmd, ok := commandKeys[key]; ok {
		m.runCommand(cmd)
		return m, nil
	}
	if t, ok := toolKeys[key]; ok {
		m.selectTool(t)
		return m, nil
	}

	switch key {
	case "f7":
		m.cycleFore()
	case "f8":
		m.cycleBack()
	case "f9":
		m.cycleLineStyle()
	case "f10":
		m.cycleFillGlyph()
	case "f11":
		m.toggleOrientation()
	case "f12":
		m.cycleFlags()
	case "tab":
		m.switchPainter(1)
	case "shift+tab":
		m.switchPainter(-1)
	case "ctrl+n":
		m.addPainter(m.newPainter())
	case "ctrl+w":
		m.closePainter(false)
	case "ctrl+s":
		if p.Filename() != "" {
			m.saveTo(p.Filename())
		} else {
			m.startFileInput(FileOpSave)
		}
	case "ctrl+o":
		m.startFileInput(FileOpOpen)
	case "ctrl+e":
		m.startFileInput(FileOpExport)
	case "ctrl+t":
		m.copySelectionText()
	case "ctrl+p":
		m.pasteSystemText()
	case "?":
		m.help = true
	case "ctrl+q":
		if m.config.Confirmations && m.anyDirty() {
			m.confirm(ConfirmQuit)
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) confirm(action ConfirmAction) {
	m.mode = ModeConfirm
	m.confirmAction = action
}

func (m *model) anyDirty() bool {
	for _, p := range m.painters {
		if p.Dirty() {
			return true
		}
	}
	return false
}

// closePainter removes the current painting. The last painting is
// replaced by an empty one rather than leaving nothing to draw on.
func (m *model) closePainter(confirmed bool) {
	p := m.currentPainter()
	if p == nil {
		return
	}
	if !confirmed && p.Dirty() && m.config.Confirmations {
		m.confirm(ConfirmCloseBuffer)
		return
	}
	m.painters = append(m.painters[:m.current], m.painters[m.current+1:]...)
	if len(m.painters) == 0 {
		m.addPainter(m.newPainter())
		return
	}
	if m.current >= len(m.painters) {
		m.current = len(m.painters) - 1
	}
	m.pushPanel()
}

func (m *model) copySelectionText() {
	p := m.currentPainter()
	text, ok := p.SelectionText()
	if !ok {
		m.errorMessage = "Nothing selected"
		return
	}
	if err := copyTextToSystemClipboard(text); err != nil {
		m.errorMessage = err.Error()
		log.Print(err)
		return
	}
	m.successMessage = "Selection copied to system clipboard"
}

func (m *model) pasteSystemText() {
	p := m.currentPainter()
	if !p.AcceptsText() {
		m.errorMessage = "Select a region with the Text tool first"
		return
	}
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "Failed to read clipboard: " + err.Error()
		log.Print(err)
		return
	}
	p.TypeText(cleanClipboardText(text))
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	m.fileList = nil
	m.selectedFile = -1
	if p := m.currentPainter(); p != nil && op == FileOpSave && p.Filename() != "" {
		m.filename = strings.TrimSuffix(filepath.Base(p.Filename()), canvasExt)
	}
	if op == FileOpOpen {
		m.scanCanvasFiles()
	}
}

func (m *model) scanCanvasFiles() {
	dir := m.config.SaveDirectory
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), canvasExt) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
	if len(m.fileList) > 0 {
		m.selectedFile = 0
		m.filename = strings.TrimSuffix(m.fileList[0], canvasExt)
	}
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case msg.Type == tea.KeyEnter:
		m.runFileOperation()
	case msg.Type == tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case msg.String() == "up" || msg.String() == "down":
		if m.fileOp != FileOpOpen || len(m.fileList) == 0 {
			break
		}
		step := 1
		if msg.String() == "up" {
			step = -1
		}
		m.selectedFile = (m.selectedFile + step + len(m.fileList)) % len(m.fileList)
		m.filename = strings.TrimSuffix(m.fileList[m.selectedFile], canvasExt)
	case msg.Type == tea.KeyRunes:
		m.filename += string(msg.Runes)
	case msg.Type == tea.KeySpace:
		m.filename += " "
	}
	return m, nil
}

func (m *model) runFileOperation() {
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "Please enter a filename"
		return
	}
	p := m.currentPainter()

	switch m.fileOp {
	case FileOpSave:
		path := m.config.GetSavePath(withExt(name, canvasExt))
		if _, err := os.Stat(path); err == nil && path != p.Filename() && m.config.Confirmations {
			m.pendingPath = path
			m.confirm(ConfirmOverwriteFile)
			return
		}
		m.saveTo(path)
	case FileOpOpen:
		path := m.config.GetSavePath(withExt(name, canvasExt))
		np := m.newPainter()
		if err := np.Load(path); err != nil {
			m.errorMessage = err.Error()
			log.Print(err)
			return
		}
		m.addPainter(np)
		m.successMessage = "Opened " + path
	case FileOpExport:
		path := m.config.GetSavePath(withExt(name, ".png"))
		if err := exportCanvas(p.Canvas(), path); err != nil {
			m.errorMessage = "Export failed: " + err.Error()
			log.Printf("export %s: %v", path, err)
			return
		}
		log.Printf("exported %s", path)
		m.successMessage = "Exported " + path
	}
	m.mode = ModeNormal
	m.filename = ""
}

func (m *model) saveTo(path string) {
	m.mode = ModeNormal
	m.filename = ""
	if err := m.currentPainter().Save(path); err != nil {
		m.errorMessage = err.Error()
		log.Print(err)
		return
	}
	m.successMessage = "Saved " + path
}

// withExt appends ext when name has no extension of its own.
func withExt(name, ext string) string {
	if filepath.Ext(name) == "" {
		return name + ext
	}
	return name
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmCloseBuffer:
			m.closePainter(true)
		case ConfirmOverwriteFile:
			m.saveTo(m.pendingPath)
			m.pendingPath = ""
		}
	case "n", "N", "esc":
		if m.confirmAction == ConfirmOverwriteFile {
			// back to the file prompt
			m.mode = ModeFileInput
			return m, nil
		}
		m.mode = ModeNormal
	}
	return m, nil
}
