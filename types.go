package main

type model struct {
	width          int
	height         int
	painters       []*Painter
	current        int
	paintingIndex  int
	mode           Mode
	help           bool
	helpScroll     int
	panel          panel
	filename       string
	fileList       []string
	selectedFile   int
	fileOp         FileOperation
	confirmAction  ConfirmAction
	pendingPath    string
	errorMessage   string
	successMessage string
	config         *Config
	mouseDown      bool
}
