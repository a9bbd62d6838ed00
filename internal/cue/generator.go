package cue

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tracknest/internal/model"
)

// Generator renders an album into CUE sheet text.
//
// Conflicting metadata across the album's tracks is arbitrated through
// the model resolver, so an embedded tag always beats a folder guess
// and ties resolve to the first track. Output is deterministic: the
// same album produces byte-identical text on every call.
//
// Example:
//
//	gen := cue.NewGenerator()
//	text := gen.Generate(album)
//	os.WriteFile(filepath.Join(album.Path, "album.cue"), []byte(text), 0644)
type Generator struct {
	caser cases.Caser
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{caser: cases.Title(language.Und)}
}

// Generate renders album as CUE text.
//
// Album-level lines come first: PERFORMER (album-artist pool, then
// artist pool), TITLE (resolved album field, falling back to the
// node's own title — always emitted), REM GENRE and REM DATE when
// resolvable. Tracks follow in order; a new FILE line starts whenever
// the source filename changes from the previous track, which lets
// one-file-many-tracks and many-files layouts share the same code
// path.
func (g *Generator) Generate(album *model.AlbumNode) string {
	var sb strings.Builder

	if performer, ok := resolvePerformer(album.Tracks); ok {
		sb.WriteString(fmt.Sprintf("PERFORMER %q\n", g.caser.String(performer)))
	}

	title, ok := model.Resolve(album.Tracks, func(t *model.Track) *model.Provenance[string] {
		return t.Meta.Album
	})
	if !ok {
		title = album.Title
	}
	sb.WriteString(fmt.Sprintf("TITLE %q\n", g.caser.String(title)))

	if genre, ok := model.Resolve(album.Tracks, func(t *model.Track) *model.Provenance[string] {
		return t.Meta.Genre
	}); ok {
		sb.WriteString(fmt.Sprintf("REM GENRE %s\n", g.caser.String(genre)))
	}

	if year, ok := resolveYear(album); ok {
		sb.WriteString(fmt.Sprintf("REM DATE %d\n", year))
	}

	g.writeTracks(&sb, album)

	return sb.String()
}

// writeTracks emits the FILE/TRACK/TITLE/PERFORMER/INDEX block for
// every track of the album.
func (g *Generator) writeTracks(sb *strings.Builder, album *model.AlbumNode) {
	currentFile := ""
	fileCounter := 0

	for i, track := range album.Tracks {
		name := filepath.Base(track.Path)
		if name != currentFile {
			sb.WriteString(fmt.Sprintf("FILE %q WAVE\n", name))
			currentFile = name
			fileCounter = 0
		}

		// The track's own number when it has one, its 1-based album
		// position otherwise. Positions never reset per file.
		number := uint(i + 1)
		if track.Meta != nil && track.Meta.TrackNumber != nil {
			number = track.Meta.TrackNumber.Value
		}
		sb.WriteString(fmt.Sprintf("  TRACK %02d AUDIO\n", number))

		if track.Meta != nil && track.Meta.Title != nil {
			// Track titles are kept verbatim, not title-cased.
			sb.WriteString(fmt.Sprintf("    TITLE %q\n", track.Meta.Title.Value))
		}

		if performer, ok := resolvePerformer([]*model.Track{track}); ok {
			sb.WriteString(fmt.Sprintf("    PERFORMER %q\n", g.caser.String(performer)))
		}

		// Synthetic index: real frame offsets would require decoding the
		// audio, so tracks are spaced two seconds apart within a file.
		sb.WriteString(fmt.Sprintf("    INDEX 01 00:%02d:00\n", fileCounter*2))
		fileCounter++
	}
}

// resolvePerformer resolves a performer from the album-artist pool,
// retrying with the artist pool only when the first yields nothing.
// The two pools are never merged.
func resolvePerformer(tracks []*model.Track) (string, bool) {
	if performer, ok := model.Resolve(tracks, func(t *model.Track) *model.Provenance[string] {
		return t.Meta.AlbumArtist
	}); ok {
		return performer, true
	}
	return model.Resolve(tracks, func(t *model.Track) *model.Provenance[string] {
		return t.Meta.Artist
	})
}

// resolveYear resolves the album year with a three-level fallback: an
// embedded-sourced year across tracks, then the album node's own year,
// then any track-supplied year.
func resolveYear(album *model.AlbumNode) (uint, bool) {
	if year, ok := model.Resolve(album.Tracks, func(t *model.Track) *model.Provenance[uint] {
		if t.Meta.Year != nil && t.Meta.Year.Source == model.SourceEmbedded {
			return t.Meta.Year
		}
		return nil
	}); ok {
		return year, true
	}

	if album.Year != 0 {
		return album.Year, true
	}

	return model.Resolve(album.Tracks, func(t *model.Track) *model.Provenance[uint] {
		return t.Meta.Year
	})
}
