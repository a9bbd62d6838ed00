package model

import "sort"

// Track is one audio track: a file path plus its metadata record.
//
// Checksum optionally holds a precomputed content checksum (hex-encoded)
// used by duplicate detection; it is filled by the library layer, never
// by the scanner.
type Track struct {
	Path     string
	Meta     *Metadata
	Checksum string
}

// AlbumNode groups the tracks of one album.
//
// Files is the deduplicated set of constituent file paths. Tracks keeps
// album order; for CUE-described albums several tracks may share one
// physical file, so len(Tracks) and len(Files) are independent.
type AlbumNode struct {
	// Title is the album title.
	Title string

	// Year is the release year, or 0 when unknown.
	Year uint

	// Tracks are the album's tracks in album order.
	Tracks []*Track

	// Path is the directory owning the album.
	Path string

	// Files is the set of file paths the tracks live in.
	Files map[string]struct{}
}

// NewAlbumNode creates an empty album rooted at path.
func NewAlbumNode(title string, path string) *AlbumNode {
	return &AlbumNode{
		Title: title,
		Path:  path,
		Files: make(map[string]struct{}),
	}
}

// AddTrack appends a track and registers its file in the file set.
func (a *AlbumNode) AddTrack(t *Track) {
	a.Tracks = append(a.Tracks, t)
	if t.Path != "" {
		a.Files[t.Path] = struct{}{}
	}
}

// FileList returns the constituent file paths sorted for deterministic
// iteration.
func (a *AlbumNode) FileList() []string {
	files := make([]string, 0, len(a.Files))
	for f := range a.Files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
