// Package textio reads plain-text input files with a silent-failure
// policy: anything that is not an analysable text file is reported as
// absent, never as an error.
package textio

import (
	"bytes"
	"os"
)

// sniffLen bounds the binary check to the leading bytes, which is
// enough to catch binary formats without scanning large files twice.
const sniffLen = 512

// ReadTextFile reads the file at path and reports whether it is
// analysable: a regular, non-empty file whose leading bytes contain no
// NUL. Missing, empty, unreadable or binary files yield ok == false.
func ReadTextFile(path string) (content []byte, ok bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
		return nil, false
	}

	raw, err := os.ReadFile(path)
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	if !IsPlainText(raw) {
		return nil, false
	}
	return raw, true
}

// IsPlainText reports whether content looks like text rather than a
// binary format. The check is a NUL scan over the sniff window.
func IsPlainText(content []byte) bool {
	window := content
	if len(window) > sniffLen {
		window = window[:sniffLen]
	}
	return bytes.IndexByte(window, 0) < 0
}
