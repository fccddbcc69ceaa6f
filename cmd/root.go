package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFailure marks errors raised while counting, as opposed to usage errors.
type runFailure struct{ err error }

func (e *runFailure) Error() string { return e.err.Error() }
func (e *runFailure) Unwrap() error { return e.err }

// Execute is the entry point for the CLI.
func Execute() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Main runs linecount with args and returns the process exit code.
// Usage errors print the error and usage text to stderr.
func Main(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "Error:", err)
	var rf *runFailure
	if !errors.As(err, &rf) {
		fmt.Fprint(stderr, root.UsageString())
	}
	return 1
}

// NewRootCmd wires the command, its flags and their viper bindings.
func NewRootCmd() *cobra.Command {
	var (
		file       string
		configFile string
		v          = viper.New()
	)

	root := &cobra.Command{
		Use:   "linecount <dir> [-f file | -e ext...] [-r]",
		Short: "Count the lines in plaintext files",
		Long: `linecount counts the lines of a single file, or of every file in a
directory whose extension matches one of the given extensions.`,
		Example: `  linecount . -f main.go         # a single file
  linecount . -e go py           # .go and .py files in the top level
  linecount ~/src -e go -r       # .go files in the whole tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) > 1 && !cmd.Flags().Changed("extensions") {
				return fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configFile, args[0], file, args[1:])
			if err != nil {
				return &runFailure{err}
			}

			if cfg.Mode() == ModeInvalid {
				return cmd.Usage()
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err := Run(cfg, cmd.OutOrStdout(), logger); err != nil {
				return &runFailure{err}
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&file, "file", "f", "", "Count the lines of this file (relative to <dir>)")
	flags.StringSliceP("extensions", "e", nil, "Count the lines of all files that match these extensions")
	flags.BoolP("recursive", "r", false, "Include all subfolders")
	flags.Bool("gitignore", false, "Skip paths matched by <dir>/.gitignore")
	flags.Bool("keep-going", false, "Skip files that cannot be read instead of aborting")
	flags.String("encoding", "", "Text encoding of the files (default utf-8)")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("color", "auto", "Color output: auto, always or never")
	flags.StringVar(&configFile, "config", "", "Read defaults from this config file (toml, yaml or json)")

	root.MarkFlagsMutuallyExclusive("file", "extensions")

	v.BindPFlag(keyExtensions, flags.Lookup("extensions"))
	v.BindPFlag(keyRecursive, flags.Lookup("recursive"))
	v.BindPFlag(keyGitignore, flags.Lookup("gitignore"))
	v.BindPFlag(keyKeepGoing, flags.Lookup("keep-going"))
	v.BindPFlag(keyEncoding, flags.Lookup("encoding"))
	v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	v.BindPFlag(keyColor, flags.Lookup("color"))

	return root
}
