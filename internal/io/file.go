// Package ioutils provides small file system helpers shared across
// tracknest: file writing, directory creation and filename
// sanitization.
package ioutils

import (
	"os"
	"regexp"
	"strings"
)

// WriteFile writes data to a file, creating it if necessary.
// The file is created with mode 0644 and truncated when it exists.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parents if they don't exist.
// Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

var (
	// Invalid path/file characters: < > : " / \ | ? * and control chars.
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	anyWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file and folder names, targeting Windows as the most restrictive
// platform.
//
// Invalid characters become underscores, trailing dots are removed,
// runs of whitespace collapse to a single space and trailing
// whitespace is trimmed.
//
// Example:
//
//	SanitizeFileName("Album: Part 1/2") // "Album_ Part 1_2"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = anyWhitespace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
