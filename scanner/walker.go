package scanner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// LoadGitignore loads <root>/.gitignore, returning nil if it is absent or unparsable.
func LoadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(gitignorePath); err == nil {
		if gitignore, err := ignore.CompileIgnoreFile(gitignorePath); err == nil {
			return gitignore
		}
	}

	return nil
}

// frame is one directory on the traversal stack.
type frame struct {
	entries []fs.DirEntry
	dir     string
	next    int
}

// Scan yields every non-directory entry reachable from root.
//
// Without opts.Recursive only the direct children of root are considered.
// Directories that cannot be listed because of a permission error contribute
// nothing; any other listing error is yielded once and ends the sequence.
// The traversal is depth-first and keeps its own stack, so deep trees do not
// grow the goroutine stack.
func Scan(root string, opts Options) iter.Seq2[FileEntry, error] {
	log := opts.logger()

	return func(yield func(FileEntry, error) bool) {
		var stack []*frame

		push := func(dir string) error {
			entries, err := os.ReadDir(dir)
			if err != nil {
				if errors.Is(err, fs.ErrPermission) {
					log.WithField("dir", dir).Debug("skipping unreadable directory")
					return nil
				}
				return fmt.Errorf("reading directory %s: %w", dir, err)
			}
			stack = append(stack, &frame{entries: entries, dir: dir})
			return nil
		}

		if err := push(root); err != nil {
			yield(FileEntry{}, err)
			return
		}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.entries) {
				stack = stack[:len(stack)-1]
				continue
			}
			d := top.entries[top.next]
			top.next++

			entry := FileEntry{Path: filepath.Join(top.dir, d.Name()), d: d}

			if opts.Ignore != nil && ignored(opts.Ignore, root, entry) {
				continue
			}

			if entry.IsDir() {
				if !opts.Recursive {
					continue
				}
				if err := push(entry.Path); err != nil {
					yield(FileEntry{}, err)
					return
				}
				continue
			}

			if !yield(entry, nil) {
				return
			}
		}
	}
}

func ignored(gi *ignore.GitIgnore, root string, entry FileEntry) bool {
	relPath, err := filepath.Rel(root, entry.Path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if entry.IsDir() {
		// Directory-only patterns ("build/") need the trailing slash.
		return gi.MatchesPath(relPath) || gi.MatchesPath(relPath+"/")
	}
	return gi.MatchesPath(relPath)
}
