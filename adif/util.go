package adif

import (
	"bytes"
	"strings"
)

// Case-insensitive comparison of a tag name
// This function may break when handling non-ASCII characters
func bEqualCI(b []byte, name string) bool {
	return bytes.EqualFold(b, []byte(name))
}

// Trimmed non-blank lines of free text
func nonBlankLines(text []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(text), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
