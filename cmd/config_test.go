package cmd

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"linecount/scanner"
)

func TestConfigMode(t *testing.T) {
	assert.Equal(t, ModeInvalid, Config{Root: "."}.Mode())
	assert.Equal(t, ModeSingleFile, Config{File: "a.txt"}.Mode())
	assert.Equal(t, ModeScan, Config{Extensions: scanner.ExtensionSet{"go"}}.Mode())
	// A file always wins over extensions supplied by a config file.
	assert.Equal(t, ModeSingleFile, Config{File: "a.txt", Extensions: scanner.ExtensionSet{"go"}}.Mode())
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "a.txt"), Config{Root: "root", File: "a.txt"}.FilePath())

	abs, _ := filepath.Abs("a.txt")
	assert.Equal(t, abs, Config{Root: "root", File: abs}.FilePath())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLogLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, parseLogLevel("info"))
	assert.Equal(t, logrus.WarnLevel, parseLogLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, parseLogLevel(" error "))
	assert.Equal(t, logrus.WarnLevel, parseLogLevel(""))
	assert.Equal(t, logrus.WarnLevel, parseLogLevel("verbose"))
}
