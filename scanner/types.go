package scanner

import (
	"io/fs"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"
)

// FileEntry represents one filesystem object yielded during a scan.
type FileEntry struct {
	Path string
	d    fs.DirEntry
}

// Name returns the final path component.
func (e FileEntry) Name() string {
	if e.d == nil {
		return ""
	}
	return e.d.Name()
}

// IsDir reports whether the entry itself is a directory.
// Symbolic links are not followed.
func (e FileEntry) IsDir() bool {
	return e.d != nil && e.d.IsDir()
}

// RunResult accumulates totals for one invocation.
type RunResult struct {
	Lines   int
	Files   int
	Skipped int // files dropped after a count error in keep-going mode
}

// Add records one counted file.
func (r *RunResult) Add(lines int) {
	r.Lines += lines
	r.Files++
}

// Options controls a directory scan.
type Options struct {
	Recursive bool
	Ignore    *ignore.GitIgnore // nil disables ignore rules
	Logger    logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return discardLogger
}
