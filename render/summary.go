package render

import (
	"fmt"
	"io"
	"strconv"
)

// Scanning is printed once before a filtered scan starts.
const Scanning = "Scanning..."

// FileSummary formats the single-file result: "<N> lines in <file>".
func FileSummary(lines int, file string, color bool) string {
	return fmt.Sprintf("%s lines in %s",
		paint(color, BoldWhite, strconv.Itoa(lines)),
		paint(color, Cyan, file))
}

// ScanSummary formats the filtered-scan result: "<lines> lines in <files> files".
func ScanSummary(lines, files int, color bool) string {
	return fmt.Sprintf("%s lines in %s files",
		paint(color, BoldWhite, strconv.Itoa(lines)),
		paint(color, Green, strconv.Itoa(files)))
}

// Progress writes the static scanning notice.
func Progress(w io.Writer, color bool) {
	fmt.Fprintln(w, paint(color, Dim, Scanning))
}
