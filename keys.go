package main

var commandKeys = map[string]Command{
	"up":     CmdScrollUp,
	"down":   CmdScrollDown,
	"left":   CmdScrollLeft,
	"right":  CmdScrollRight,
	"esc":    CmdCancel,
	"enter":  CmdCommit,
	"ctrl+z": CmdUndo,
	"ctrl+y": CmdRedo,
	"ctrl+r": CmdRedo,
	"ctrl+c": CmdCopy,
	"ctrl+v": CmdPaste,
}

var toolKeys = map[string]Tool{
	"f1": ToolSelection,
	"f2": ToolPan,
	"f3": ToolRectangle,
	"f4": ToolFillRectangle,
	"f5": ToolLine,
	"f6": ToolText,
}

// runCommand applies a logical editing command to the current painter and
// reports whether anything happened.
func (m *model) runCommand(cmd Command) bool {
	p := m.currentPainter()
	if p == nil {
		return false
	}
	switch cmd {
	case CmdScrollUp, CmdScrollDown, CmdScrollLeft, CmdScrollRight:
		return m.handleScroll(cmd, 1)
	case CmdCancel:
		return p.CancelSelection()
	case CmdCommit:
		return p.WriteCurrentObject()
	case CmdUndo:
		return p.Undo()
	case CmdRedo:
		return p.Redo()
	case CmdCopy:
		return p.CopySelection()
	case CmdPaste:
		return p.PasteFromClipboard()
	}
	return false
}
