package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, 100, config.Width)
	assert.Equal(t, 100, config.Height)
	assert.Equal(t, defaultHistoryDepth, config.HistoryDepth)
	assert.True(t, config.Confirmations)
	assert.Empty(t, config.SaveDirectory)
}

func TestConfigParse(t *testing.T) {
	rc := `
# scrawl settings
savedirectory = ~/art
Width=120
height = 40
history_depth=12
confirmations=false
logfile=~/scrawl.log
nonsense
unknown=1
`
	config := defaultConfig()
	config.parse(strings.NewReader(rc), "/home/me")

	assert.Equal(t, filepath.Join("/home/me", "art"), config.SaveDirectory)
	assert.Equal(t, 120, config.Width)
	assert.Equal(t, 40, config.Height)
	assert.Equal(t, 12, config.HistoryDepth)
	assert.False(t, config.Confirmations)
	assert.Equal(t, filepath.Join("/home/me", "scrawl.log"), config.LogFile)
}

func TestConfigParseRejectsBadValues(t *testing.T) {
	config := defaultConfig()
	config.parse(strings.NewReader("width=0\nheight=99999\nhistorydepth=-3\nwidth=abc\n"), "/home/me")
	assert.Equal(t, defaultCanvasWidth, config.Width)
	assert.Equal(t, defaultCanvasHeight, config.Height)
	assert.Equal(t, defaultHistoryDepth, config.HistoryDepth)
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "pic.scrawl", config.GetSavePath("pic.scrawl"))

	dir := t.TempDir()
	config.SaveDirectory = filepath.Join(dir, "saves")
	assert.Equal(t, filepath.Join(dir, "saves", "pic.scrawl"), config.GetSavePath("pic.scrawl"))
	assert.DirExists(t, config.SaveDirectory)
	assert.Equal(t, "/abs/pic.scrawl", config.GetSavePath("/abs/pic.scrawl"))
}
