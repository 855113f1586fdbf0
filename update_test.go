package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// newTestModel returns a 40x20 terminal with one small painting.
func newTestModel(t *testing.T) model {
	t.Helper()
	config := defaultConfig()
	config.Width, config.Height = 20, 10
	config.SaveDirectory = t.TempDir()
	m := initialModel(config, nil)
	m, _ = send(m, tea.WindowSizeMsg{Width: 40, Height: 20})
	require.Len(t, m.painters, 1)
	return m
}

// dragRegion drags in terminal coordinates; the painter starts on row 1.
func dragRegion(m model, x0, y0, x1, y1 int) model {
	m, _ = send(m, mouse(tea.MouseActionPress, x0, y0+1))
	m, _ = send(m, mouse(tea.MouseActionMotion, x1, y1+1))
	m, _ = send(m, mouse(tea.MouseActionRelease, x1, y1+1))
	return m
}

func TestModelDrawUndoRedo(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	p := m.currentPainter()
	require.Equal(t, ToolFillRectangle, p.DrawingObject().Tool())

	m = dragRegion(m, 2, 2, 4, 4)
	assert.Equal(t, newRect(2, 2, 4, 4), p.Selection().ContentRect())

	m, _ = send(m, key(tea.KeyEnter))
	assert.Equal(t, '█', glyphAt(p.Canvas(), 3, 3))
	assert.True(t, p.Dirty())

	m, _ = send(m, key(tea.KeyCtrlZ))
	assert.Equal(t, ' ', glyphAt(p.Canvas(), 3, 3))
	m, _ = send(m, key(tea.KeyCtrlY))
	assert.Equal(t, '█', glyphAt(p.Canvas(), 3, 3))
	m, _ = send(m, key(tea.KeyCtrlZ))
	m, _ = send(m, key(tea.KeyCtrlR))
	assert.Equal(t, '█', glyphAt(p.Canvas(), 3, 3))
}

func TestModelPanelPushesProperties(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF3))
	m, _ = send(m, key(tea.KeyF7))
	m, _ = send(m, key(tea.KeyF9))

	rect := m.currentPainter().DrawingObject().(*RectangleObject)
	assert.Equal(t, White.next(), rect.Fore)
	assert.Equal(t, LineDouble, rect.LineStyle)

	// switching tools keeps the panel values
	m, _ = send(m, key(tea.KeyF5))
	m, _ = send(m, key(tea.KeyF11))
	line := m.currentPainter().DrawingObject().(*LineObject)
	assert.Equal(t, White.next(), line.Fore)
	assert.Equal(t, LineDouble, line.LineStyle)
	assert.True(t, line.Vertical)
}

func TestModelTextTyping(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF6))
	m = dragRegion(m, 1, 1, 8, 2)

	m, _ = send(m, runes("a?"))
	m, _ = send(m, key(tea.KeySpace))
	m, _ = send(m, runes("bc"))
	m, _ = send(m, key(tea.KeyBackspace))
	assert.False(t, m.help)

	p := m.currentPainter()
	assert.Equal(t, "a? b", p.DrawingObject().(*TextObject).Text())

	m, _ = send(m, key(tea.KeyEnter))
	assert.Equal(t, " a? b", p.Canvas().Lines()[1])
}

func TestModelIgnoresClicksOnTabBar(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, mouse(tea.MouseActionPress, 3, 0))
	assert.False(t, m.currentPainter().Selection().Visible())
}

func TestModelOtherButtonsDoNotCommit(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	m = dragRegion(m, 2, 2, 4, 4)
	p := m.currentPainter()
	require.True(t, p.Selection().Visible())

	// terminals often report releases without a button
	m, _ = send(m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = send(m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	m, _ = send(m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle})
	m, _ = send(m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonMiddle})

	assert.True(t, p.Selection().Visible())
	assert.Equal(t, ' ', glyphAt(p.Canvas(), 3, 3))
	assert.Equal(t, 0, p.History().UndoLen())
	assert.False(t, m.mouseDown)

	// a left click elsewhere still commits
	m, _ = send(m, mouse(tea.MouseActionPress, 20, 10))
	m, _ = send(m, mouse(tea.MouseActionRelease, 20, 10))
	assert.Equal(t, '█', glyphAt(p.Canvas(), 3, 3))
	assert.Equal(t, 1, p.History().UndoLen())
}

func TestModelStrayMotionIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	m, _ = send(m, mouse(tea.MouseActionMotion, 5, 5))
	m, _ = send(m, mouse(tea.MouseActionRelease, 6, 6))
	assert.False(t, m.currentPainter().Selection().Visible())

	// a press on the tab bar does not start a gesture either
	m, _ = send(m, mouse(tea.MouseActionPress, 3, 0))
	m, _ = send(m, mouse(tea.MouseActionMotion, 5, 5))
	assert.False(t, m.mouseDown)
	assert.False(t, m.currentPainter().Selection().Visible())
}

func TestModelPanelLine(t *testing.T) {
	m := newTestModel(t)
	assert.NotContains(t, m.panelLine(), "Undo:")
	assert.NotContains(t, m.panelLine(), "Redo:")

	m = dragRegion(m, 2, 2, 3, 3)
	line := m.panelLine()
	assert.Contains(t, line, "Tool: Selection")
	assert.Contains(t, line, "Region: 2,2 2x2")
	assert.Contains(t, line, "From: 2,2")

	m = newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	m = dragRegion(m, 1, 1, 2, 2)
	m, _ = send(m, key(tea.KeyEnter))
	assert.Contains(t, m.panelLine(), "Undo: 1/")
	assert.NotContains(t, m.panelLine(), "From:")

	m, _ = send(m, key(tea.KeyCtrlZ))
	line = m.panelLine()
	assert.NotContains(t, line, "Undo:")
	assert.Contains(t, line, "Redo: 1")
}

func TestModelWheelScrolls(t *testing.T) {
	config := defaultConfig()
	m := initialModel(config, nil)
	m, _ = send(m, tea.WindowSizeMsg{Width: 40, Height: 20})

	m, _ = send(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, point{0, wheelScroll}, m.currentPainter().ScrollOffset())
	m, _ = send(m, key(tea.KeyRight))
	assert.Equal(t, point{1, wheelScroll}, m.currentPainter().ScrollOffset())
}

func TestModelPaintings(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyCtrlN))
	require.Len(t, m.painters, 2)
	assert.Equal(t, 1, m.current)
	assert.Equal(t, "Painting─2", m.currentPainter().Title())

	m, _ = send(m, key(tea.KeyTab))
	assert.Equal(t, 0, m.current)
	m, _ = send(m, key(tea.KeyShiftTab))
	assert.Equal(t, 1, m.current)

	// a clean painting closes without asking
	m, _ = send(m, key(tea.KeyCtrlW))
	require.Len(t, m.painters, 1)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModelCloseDirtyAsks(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	m = dragRegion(m, 1, 1, 2, 2)
	m, _ = send(m, key(tea.KeyEnter))
	first := m.currentPainter()

	m, _ = send(m, key(tea.KeyCtrlW))
	assert.Equal(t, ModeConfirm, m.mode)
	m, _ = send(m, runes("n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Same(t, first, m.currentPainter())

	m, _ = send(m, key(tea.KeyCtrlW))
	m, _ = send(m, runes("y"))
	require.Len(t, m.painters, 1)
	assert.NotSame(t, first, m.currentPainter())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := send(m, key(tea.KeyCtrlQ))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m.currentPainter().dirty = true
	m, cmd = send(m, key(tea.KeyCtrlQ))
	assert.Nil(t, cmd)
	assert.Equal(t, ModeConfirm, m.mode)
	_, cmd = send(m, runes("y"))
	require.NotNil(t, cmd)
}

func TestModelSaveOpenExport(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	m = dragRegion(m, 0, 0, 1, 1)
	m, _ = send(m, key(tea.KeyEnter))

	m, _ = send(m, key(tea.KeyCtrlS))
	require.Equal(t, ModeFileInput, m.mode)
	m, _ = send(m, runes("pic"))
	m, _ = send(m, key(tea.KeyEnter))
	require.Equal(t, ModeNormal, m.mode, m.errorMessage)

	saved := filepath.Join(m.config.SaveDirectory, "pic"+canvasExt)
	assert.FileExists(t, saved)
	assert.Equal(t, saved, m.currentPainter().Filename())
	assert.False(t, m.currentPainter().Dirty())

	m, _ = send(m, key(tea.KeyCtrlO))
	require.Equal(t, []string{"pic" + canvasExt}, m.fileList)
	assert.Equal(t, "pic", m.filename)
	m, _ = send(m, key(tea.KeyEnter))
	require.Len(t, m.painters, 2)
	assert.True(t, m.painters[1].Canvas().Equal(m.painters[0].Canvas()))

	m, _ = send(m, key(tea.KeyCtrlE))
	m, _ = send(m, runes("pic.txt"))
	m, _ = send(m, key(tea.KeyEnter))
	assert.Empty(t, m.errorMessage)
	assert.FileExists(t, filepath.Join(m.config.SaveDirectory, "pic.txt"))
}

func TestModelSaveExistingAsks(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, SaveCanvas(NewCanvas(2, 2), filepath.Join(m.config.SaveDirectory, "taken"+canvasExt)))

	m, _ = send(m, key(tea.KeyCtrlS))
	m, _ = send(m, runes("taken"))
	m, _ = send(m, key(tea.KeyEnter))
	require.Equal(t, ModeConfirm, m.mode)

	// declining goes back to the prompt
	m, _ = send(m, runes("n"))
	assert.Equal(t, ModeFileInput, m.mode)
	m, _ = send(m, key(tea.KeyEnter))
	m, _ = send(m, runes("y"))
	assert.Equal(t, ModeNormal, m.mode)

	loaded, err := LoadCanvas(filepath.Join(m.config.SaveDirectory, "taken"+canvasExt))
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.Width())
}

func TestModelOpenMissingReportsError(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyCtrlO))
	m, _ = send(m, runes("nope"))
	m, _ = send(m, key(tea.KeyEnter))
	assert.Equal(t, ModeFileInput, m.mode)
	assert.NotEmpty(t, m.errorMessage)
	assert.Len(t, m.painters, 1)

	m, _ = send(m, key(tea.KeyEsc))
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModelHelp(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, runes("?"))
	require.True(t, m.help)
	assert.Contains(t, m.View(), "scrawl help")

	m, _ = send(m, key(tea.KeyDown))
	assert.Equal(t, 1, m.helpScroll)
	m, _ = send(m, key(tea.KeyEsc))
	assert.False(t, m.help)
	assert.Equal(t, 0, m.helpScroll)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(m, key(tea.KeyF4))
	view := m.View()
	assert.Contains(t, view, "Painting─1")
	assert.Contains(t, view, "Tool: Fill")
}

func TestInitialModelWithFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a"+canvasExt)
	c := NewCanvas(3, 3)
	c.SetCell(1, 1, newCell('x', White, Black, FlagNone))
	require.NoError(t, SaveCanvas(c, existing))
	fresh := filepath.Join(dir, "b"+canvasExt)

	m := initialModel(defaultConfig(), []string{existing, fresh})
	require.Len(t, m.painters, 2)
	assert.True(t, m.painters[0].Canvas().Equal(c))
	assert.Equal(t, fresh, m.painters[1].Filename())
	assert.Equal(t, 1, m.current)
}
