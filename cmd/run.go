package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"

	"linecount/render"
	"linecount/scanner"
)

// Run executes one invocation described by cfg and writes the summary to out.
// An enumeration or counting error ends the run without a summary, unless
// cfg.KeepGoing is set, in which case unreadable files are skipped.
func Run(cfg Config, out io.Writer, log logrus.FieldLogger) error {
	enc, err := scanner.LookupEncoding(cfg.Encoding)
	if err != nil {
		return err
	}
	color := cfg.Color.Enabled(out)

	switch cfg.Mode() {
	case ModeSingleFile:
		lines, err := scanner.CountLines(cfg.FilePath(), enc)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, render.FileSummary(lines, cfg.File, color))
		return nil

	case ModeScan:
		opts := scanner.Options{
			Recursive: cfg.Recursive,
			Logger:    log,
		}
		if cfg.Gitignore {
			opts.Ignore = scanner.LoadGitignore(cfg.Root)
		}

		render.Progress(out, color)
		result, err := scan(cfg, opts, enc, log)
		if err != nil {
			return err
		}
		if result.Skipped > 0 {
			log.WithField("skipped", result.Skipped).Warn("some files could not be counted")
		}
		fmt.Fprintln(out, render.ScanSummary(result.Lines, result.Files, color))
		return nil
	}

	return fmt.Errorf("no file or extensions given")
}

func scan(cfg Config, opts scanner.Options, enc encoding.Encoding, log logrus.FieldLogger) (scanner.RunResult, error) {
	var result scanner.RunResult

	for entry, err := range scanner.Scan(cfg.Root, opts) {
		if err != nil {
			return result, err
		}
		if !cfg.Extensions.Match(entry.Path) {
			continue
		}

		lines, err := scanner.CountLines(entry.Path, enc)
		if err != nil {
			if !cfg.KeepGoing {
				return result, err
			}
			log.WithError(err).Warn("skipping file")
			result.Skipped++
			continue
		}
		log.WithFields(logrus.Fields{"file": entry.Path, "lines": lines}).Debug("counted")
		result.Add(lines)
	}

	return result, nil
}
