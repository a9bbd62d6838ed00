package cue

import (
	"strings"
	"testing"

	"tracknest/internal/model"
)

func testTrack(path string, meta *model.Metadata) *model.Track {
	if meta == nil {
		meta = &model.Metadata{}
	}
	meta.Path = path
	return &model.Track{Path: path, Meta: meta}
}

func TestGenerator_SingleFileAlbum(t *testing.T) {
	album := model.NewAlbumNode("Test Album", "/music/Artist/Test Album")
	for _, title := range []string{"one", "two", "three"} {
		album.AddTrack(testTrack("/music/Artist/Test Album/disc.flac", &model.Metadata{
			Title:  model.Embedded(title),
			Artist: model.Embedded("some artist"),
		}))
	}

	text := NewGenerator().Generate(album)

	if got := strings.Count(text, "FILE "); got != 1 {
		t.Errorf("FILE lines = %d, want 1\n%s", got, text)
	}
	for _, index := range []string{"INDEX 01 00:00:00", "INDEX 01 00:02:00", "INDEX 01 00:04:00"} {
		if !strings.Contains(text, index) {
			t.Errorf("missing %q in:\n%s", index, text)
		}
	}
	// Album performer resolved from the artist pool, title-cased.
	if !strings.Contains(text, "PERFORMER \"Some Artist\"\n") {
		t.Errorf("missing title-cased album performer in:\n%s", text)
	}
	// Track titles stay verbatim.
	if !strings.Contains(text, "    TITLE \"one\"\n") {
		t.Errorf("track title was not emitted verbatim in:\n%s", text)
	}
}

func TestGenerator_FileChangeStartsNewFileBlock(t *testing.T) {
	album := model.NewAlbumNode("Album", "/music/a")
	album.AddTrack(testTrack("/music/a/01.flac", nil))
	album.AddTrack(testTrack("/music/a/02.flac", nil))

	text := NewGenerator().Generate(album)

	if got := strings.Count(text, "FILE "); got != 2 {
		t.Errorf("FILE lines = %d, want 2\n%s", got, text)
	}
	// The per-file counter resets, so both tracks index at 00:00:00.
	if got := strings.Count(text, "INDEX 01 00:00:00"); got != 2 {
		t.Errorf("INDEX 01 00:00:00 count = %d, want 2\n%s", got, text)
	}
}

func TestGenerator_TrackNumbering(t *testing.T) {
	album := model.NewAlbumNode("Album", "/music/a")
	album.AddTrack(testTrack("/music/a/01.flac", &model.Metadata{
		TrackNumber: model.Embedded(uint(9)),
	}))
	album.AddTrack(testTrack("/music/a/02.flac", nil))

	text := NewGenerator().Generate(album)

	if !strings.Contains(text, "TRACK 09 AUDIO") {
		t.Errorf("own track number not used:\n%s", text)
	}
	// Fallback is the 1-based album position, never reset per file.
	if !strings.Contains(text, "TRACK 02 AUDIO") {
		t.Errorf("positional fallback number missing:\n%s", text)
	}
}

func TestGenerator_AlbumTitleFallback(t *testing.T) {
	album := model.NewAlbumNode("fallback title", "/music/a")
	album.AddTrack(testTrack("/music/a/01.flac", nil))

	text := NewGenerator().Generate(album)

	if !strings.Contains(text, "TITLE \"Fallback Title\"\n") {
		t.Errorf("album node title fallback missing or not title-cased:\n%s", text)
	}
}

func TestGenerator_GenreUnquoted(t *testing.T) {
	album := model.NewAlbumNode("Album", "/music/a")
	album.AddTrack(testTrack("/music/a/01.flac", &model.Metadata{
		Genre: model.CueInferred("progressive rock", 1.0),
	}))

	text := NewGenerator().Generate(album)

	if !strings.Contains(text, "REM GENRE Progressive Rock\n") {
		t.Errorf("genre line missing, quoted or not title-cased:\n%s", text)
	}
}

func TestGenerator_YearFallbackChain(t *testing.T) {
	embedded := &model.Metadata{Year: model.Embedded(uint(1999))}
	inferred := &model.Metadata{Year: model.CueInferred(uint(2012), 1.0)}

	tests := []struct {
		name      string
		meta      *model.Metadata
		albumYear uint
		want      string
	}{
		{"embedded year wins", embedded, 2005, "REM DATE 1999\n"},
		{"album node year next", inferred, 2005, "REM DATE 2005\n"},
		{"any track year last", inferred, 0, "REM DATE 2012\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			album := model.NewAlbumNode("Album", "/music/a")
			album.Year = tt.albumYear
			album.AddTrack(testTrack("/music/a/01.flac", tt.meta))

			text := NewGenerator().Generate(album)
			if !strings.Contains(text, tt.want) {
				t.Errorf("missing %q in:\n%s", tt.want, text)
			}
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	album := model.NewAlbumNode("Album", "/music/a")
	album.AddTrack(testTrack("/music/a/disc.flac", &model.Metadata{
		Title:       model.CueInferred("Song", 1.0),
		AlbumArtist: model.FolderInferred("band", 0.5),
	}))

	gen := NewGenerator()
	first := gen.Generate(album)
	second := gen.Generate(album)
	if first != second {
		t.Error("Generate() is not deterministic for identical input")
	}
}

func TestGenerator_RoundTripsThroughParser(t *testing.T) {
	album := model.NewAlbumNode("Round Trip", "/music/a")
	album.AddTrack(testTrack("/music/a/disc.flac", &model.Metadata{
		Title:  model.CueInferred("First", 1.0),
		Artist: model.CueInferred("Band", 1.0),
	}))
	album.AddTrack(testTrack("/music/a/disc.flac", &model.Metadata{
		Title: model.CueInferred("Second", 1.0),
	}))

	sheet, err := Parse(NewGenerator().Generate(album))
	if err != nil {
		t.Fatalf("generated sheet does not parse: %v", err)
	}
	if len(sheet.Tracks) != 2 {
		t.Errorf("len(Tracks) = %d, want 2", len(sheet.Tracks))
	}
	if len(sheet.Files) != 1 {
		t.Errorf("len(Files) = %d, want 1", len(sheet.Files))
	}
	if sheet.Title != "Round Trip" {
		t.Errorf("Title = %q, want %q", sheet.Title, "Round Trip")
	}
}
