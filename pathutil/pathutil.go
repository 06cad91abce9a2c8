// Package pathutil implements small utility routines for working with
// operating system file paths on top of path/filepath.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of the path without its directory components and
// without the final extension. A name without an extension is returned whole;
// only the last extension is stripped from a multi-extension name.
//
//	Stem("/path/to/document.pdf") // "document"
//	Stem("archive.tar.gz")        // "archive.tar"
//	Stem("noext")                 // "noext"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
