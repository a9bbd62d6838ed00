package infer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Guess is a best-effort reading of a track filename. Empty fields
// mean the pattern supplied nothing for them.
type Guess struct {
	Artist string
	Album  string
	Title  string
}

var (
	// "01 ", "001. ", "01 - " leading track numbers.
	reLeadingNumber = regexp.MustCompile(`^\d{1,3}(?:\.|\s*-)?\s+`)

	// "Artist - Album - Track"
	reArtistAlbumTrack = regexp.MustCompile(`^(.+?)\s+-\s+(.+?)\s+-\s+(.+)$`)

	// "Album - Track"
	reAlbumTrack = regexp.MustCompile(`^(.+?)\s+-\s+(.+)$`)

	// "Track (Album)"
	reTrackParenAlbum = regexp.MustCompile(`^(.+?)\s+\((.+)\)$`)

	reWhitespace = regexp.MustCompile(`\s+`)
)

// FromFilename reads artist/album/title out of a track filename.
//
// Patterns are tried in order: "Artist - Album - Track", then
// "Album - Track", then "Track (Album)". When nothing matches, the
// cleaned stem becomes the title and the other fields stay empty.
func FromFilename(name string) Guess {
	stem := CleanStem(name)

	if m := reArtistAlbumTrack.FindStringSubmatch(stem); m != nil {
		return Guess{Artist: m[1], Album: m[2], Title: m[3]}
	}
	if m := reAlbumTrack.FindStringSubmatch(stem); m != nil {
		return Guess{Album: m[1], Title: m[2]}
	}
	if m := reTrackParenAlbum.FindStringSubmatch(stem); m != nil {
		return Guess{Album: m[2], Title: m[1]}
	}

	return Guess{Title: stem}
}

// CleanStem strips the extension, any leading track number, and
// normalizes separators and whitespace in a filename.
//
//	CleanStem("03 - Some_Song.flac") // "Some Song"
func CleanStem(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	stem = reLeadingNumber.ReplaceAllString(stem, "")
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = reWhitespace.ReplaceAllString(stem, " ")
	return strings.TrimSpace(stem)
}
