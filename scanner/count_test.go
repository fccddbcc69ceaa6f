package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountReader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "a", 1},
		{"single newline", "\n", 1},
		{"trailing newline", "a\nb\n", 2},
		{"no trailing newline", "a\nb", 2},
		{"blank lines", "\n\n\n", 3},
		{"crlf", "a\r\nb\r\n", 2},
		{"lone cr", "a\rb\rc", 3},
		{"mixed", "a\r\nb\nc\rd", 4},
		{"utf8", "héllo\nwörld\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountReader(strings.NewReader(tt.content), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountReaderCRLFSplitAcrossReads(t *testing.T) {
	// One byte per Read forces "\r" and "\n" into separate buffers.
	got, err := CountReader(iotest.OneByteReader(strings.NewReader("a\r\nb\r\n")), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCountReaderLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	got, err := CountReader(strings.NewReader(long+"\n"+long), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCountReaderRejectsInvalidUTF8(t *testing.T) {
	_, err := CountReader(strings.NewReader("ok\n\xff\xfe\x00binary\n"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndecodable))
}

func TestCountReaderWithEncoding(t *testing.T) {
	enc, err := LookupEncoding("latin1")
	require.NoError(t, err)
	require.NotNil(t, enc)

	// "café\nnaïve\n" in ISO-8859-1.
	latin1 := "caf\xe9\nna\xefve\n"
	got, err := CountReader(strings.NewReader(latin1), enc)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	utf16, err := LookupEncoding("utf-16le")
	require.NoError(t, err)
	got, err = CountReader(strings.NewReader("a\x00\n\x00b\x00\n\x00"), utf16)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		enc, err := LookupEncoding(name)
		require.NoError(t, err, name)
		assert.Nil(t, enc, name)
	}

	_, err := LookupEncoding("klingon")
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestCountLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ten.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("line\n", 10)), 0644))

	got, err := CountLines(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	empty := filepath.Join(tmpDir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	got, err = CountLines(empty, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestCountLinesMissingFile(t *testing.T) {
	_, err := CountLines(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestCountLinesDirectoryFails(t *testing.T) {
	_, err := CountLines(t.TempDir(), nil)
	assert.Error(t, err)
}
