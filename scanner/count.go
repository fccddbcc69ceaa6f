package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrUndecodable is returned when file content is not valid text in the expected encoding.
	ErrUndecodable = errors.New("content is not valid text")
	// ErrUnknownEncoding is returned by LookupEncoding for names it cannot resolve.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// LookupEncoding resolves a WHATWG/IANA encoding name. UTF-8 and the empty
// name resolve to nil, which means bytes are read as UTF-8 without a decoder.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if canonical, err := htmlindex.Name(enc); err == nil && canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// CountLines counts the lines in the file at path.
// The file is always closed before returning.
func CountLines(path string, enc encoding.Encoding) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	n, err := CountReader(f, enc)
	if err != nil {
		return 0, fmt.Errorf("counting lines in %s: %w", path, err)
	}
	return n, nil
}

// CountReader counts lines read from r. A final line without a terminator
// still counts, so "a\nb" and "a\nb\n" are both two lines. "\n", "\r\n" and
// a lone "\r" all end a line.
func CountReader(r io.Reader, enc encoding.Encoding) (int, error) {
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}

	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanTextLines)
	for scanner.Scan() {
		count++
		if !utf8.Valid(scanner.Bytes()) {
			return 0, fmt.Errorf("line %d: %w", count, ErrUndecodable)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}

// scanTextLines is a bufio.SplitFunc that treats "\n", "\r\n" and "\r" as
// line terminators. Terminators are stripped from the token.
func scanTextLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// Trailing '\r': wait for more data unless this is the end.
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
