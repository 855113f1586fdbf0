package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultCanvasWidth  = 100
	defaultCanvasHeight = 100
	maxCanvasSide       = 4096
)

type Config struct {
	SaveDirectory string
	Width         int
	Height        int
	HistoryDepth  int
	Confirmations bool
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		Width:         defaultCanvasWidth,
		Height:        defaultCanvasHeight,
		HistoryDepth:  defaultHistoryDepth,
		Confirmations: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	file, err := os.Open(filepath.Join(homeDir, ".scrawlrc"))
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

// parse reads key=value lines; unknown keys and bad values are ignored.
func (config *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= maxCanvasSide {
				config.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= maxCanvasSide {
				config.Height = n
			}
		case "historydepth", "history_depth", "undo":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.HistoryDepth = n
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
