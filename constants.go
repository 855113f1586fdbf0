package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpExport
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmCloseBuffer
	ConfirmOverwriteFile
)

// Command is a logical editing action a key is bound to.
type Command int

const (
	CmdNone Command = iota
	CmdScrollUp
	CmdScrollDown
	CmdScrollLeft
	CmdScrollRight
	CmdCancel
	CmdCommit
	CmdUndo
	CmdRedo
	CmdCopy
	CmdPaste
)

// fill glyphs offered by the panel: full, 75%, 50% and 25% blocks, blank
var fillGlyphs = []rune{'█', '▓', '▒', '░', ' '}

var flagCycle = []CharFlags{
	FlagNone,
	FlagBold,
	FlagItalic,
	FlagUnderline,
	FlagBold | FlagUnderline,
}
