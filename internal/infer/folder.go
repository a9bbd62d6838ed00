// Package infer derives metadata guesses from directory layout and
// filenames. Everything here is heuristic: results are optional and
// callers wrap them in folder-inferred provenance values with a
// confidence well below embedded tags.
package infer

import (
	"path/filepath"
	"strings"
)

// The assumed library layout is artist/album/track: the file's parent
// directory names the album and the grandparent names the artist.

// ArtistForFile returns the artist implied by the file's grandparent
// directory, or false when the path is too shallow to carry one.
func ArtistForFile(path string) (string, bool) {
	return ArtistForDir(filepath.Dir(path))
}

// AlbumForFile returns the album implied by the file's parent
// directory, or false when the path is too shallow to carry one.
func AlbumForFile(path string) (string, bool) {
	return AlbumForDir(filepath.Dir(path))
}

// ArtistForDir returns the artist implied by the parent of an album
// directory.
func ArtistForDir(albumDir string) (string, bool) {
	return dirName(filepath.Dir(albumDir))
}

// AlbumForDir returns the album implied by the album directory itself.
func AlbumForDir(albumDir string) (string, bool) {
	return dirName(albumDir)
}

// dirName extracts a usable name from a directory path, rejecting
// roots and empty components.
func dirName(dir string) (string, bool) {
	name := strings.TrimSpace(filepath.Base(filepath.Clean(dir)))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", false
	}
	return name, true
}
