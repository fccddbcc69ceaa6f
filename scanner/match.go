package scanner

import (
	"path/filepath"
	"slices"
	"strings"
)

// ExtensionSet is the ordered list of extensions, without leading dots, a scan filters on.
type ExtensionSet []string

// NewExtensionSet builds a set from user input. Comma separated values are
// split, one leading '.' is dropped and empty values are ignored.
func NewExtensionSet(values ...string) ExtensionSet {
	var set ExtensionSet
	for _, v := range values {
		for _, ext := range strings.Split(v, ",") {
			ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
			if ext == "" || slices.Contains(set, ext) {
				continue
			}
			set = append(set, ext)
		}
	}
	return set
}

// Ext returns the text after the last '.' of the final path component and
// whether the component has a '.' at all.
func Ext(path string) (string, bool) {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return "", false
	}
	return base[i+1:], true
}

// Match reports whether path's extension is in the set. Comparison is case-sensitive.
func (s ExtensionSet) Match(path string) bool {
	ext, ok := Ext(path)
	if !ok {
		return false
	}
	return slices.Contains(s, ext)
}
