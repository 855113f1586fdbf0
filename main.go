package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()
	closeLog, err := setupLogging(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	p := tea.NewProgram(
		initialModel(config, os.Args[1:]),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Printf("program exited: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends the log package to a file when SCRAWL_LOG or the
// config names one. Otherwise log output is dropped, since the terminal
// belongs to the UI.
func setupLogging(config *Config) (func(), error) {
	path := os.Getenv("SCRAWL_LOG")
	if path == "" {
		path = config.LogFile
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "scrawl")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func initialModel(config *Config, files []string) model {
	m := model{
		config:       config,
		panel:        defaultPanel(),
		selectedFile: -1,
	}
	for _, path := range files {
		p := m.newPainter()
		if err := p.Load(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				m.errorMessage = err.Error()
				log.Print(err)
				continue
			}
			// a new painting that will be saved under this name
			p.SetFilename(path)
		}
		m.addPainter(p)
	}
	if len(m.painters) == 0 {
		m.addPainter(m.newPainter())
	}
	return m
}
