package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"linecount/render"
	"linecount/scanner"
)

// Mode is the kind of run selected by the invocation.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeSingleFile
	ModeScan
)

// Config is everything one run needs, built once from flags and the
// optional config file.
type Config struct {
	Root       string
	File       string
	Extensions scanner.ExtensionSet
	Recursive  bool
	Gitignore  bool
	KeepGoing  bool
	Encoding   string
	LogLevel   string
	Color      render.ColorMode
}

// Mode picks single-file mode when a file is given, filtered scan when
// there are extensions, and invalid otherwise.
func (c Config) Mode() Mode {
	switch {
	case c.File != "":
		return ModeSingleFile
	case len(c.Extensions) > 0:
		return ModeScan
	default:
		return ModeInvalid
	}
}

// FilePath resolves File against Root. Absolute files are used as given.
func (c Config) FilePath() string {
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(c.Root, c.File)
}

// Viper keys. Only these may come from a config file.
const (
	keyExtensions = "extensions"
	keyRecursive  = "recursive"
	keyGitignore  = "gitignore"
	keyKeepGoing  = "keep_going"
	keyEncoding   = "encoding"
	keyLogLevel   = "log_level"
	keyColor      = "color"
)

// loadConfig reads the optional config file into v and assembles a Config.
// Flags bound to v win over the file; the file wins over flag defaults.
func loadConfig(v *viper.Viper, configFile, root, file string, extraExts []string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}

	color, err := render.ParseColorMode(v.GetString(keyColor))
	if err != nil {
		return Config{}, err
	}

	exts := append(v.GetStringSlice(keyExtensions), extraExts...)

	return Config{
		Root:       root,
		File:       file,
		Extensions: scanner.NewExtensionSet(exts...),
		Recursive:  v.GetBool(keyRecursive),
		Gitignore:  v.GetBool(keyGitignore),
		KeepGoing:  v.GetBool(keyKeepGoing),
		Encoding:   v.GetString(keyEncoding),
		LogLevel:   v.GetString(keyLogLevel),
		Color:      color,
	}, nil
}
