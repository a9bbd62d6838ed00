package media

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"

	"tracknest/internal/model"
)

// ReadEmbedded reads the tags embedded in an audio file and returns a
// metadata record whose values all carry embedded provenance at
// confidence 1.0.
//
// Only fields the file actually supplies are set; a missing or empty
// tag leaves the corresponding record field nil. Duration is never
// filled here — that is the prober's job.
func ReadEmbedded(path string) (*model.Metadata, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}
	defer f.Close()

	tags, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("media: read tags from %s: %w", path, err)
	}

	record := &model.Metadata{
		Format: format.String(),
		Path:   path,
	}

	if v := tags.Title(); v != "" {
		record.Title = model.Embedded(v)
	}
	if v := tags.Artist(); v != "" {
		record.Artist = model.Embedded(v)
	}
	if v := tags.Album(); v != "" {
		record.Album = model.Embedded(v)
	}
	if v := tags.AlbumArtist(); v != "" {
		record.AlbumArtist = model.Embedded(v)
	}
	if v := tags.Genre(); v != "" {
		record.Genre = model.Embedded(v)
	}
	if v := tags.Year(); v > 0 {
		record.Year = model.Embedded(uint(v))
	}
	if n, _ := tags.Track(); n > 0 {
		record.TrackNumber = model.Embedded(uint(n))
	}
	if n, _ := tags.Disc(); n > 0 {
		record.DiscNumber = model.Embedded(uint(n))
	}

	return record, nil
}

// ReadPicture returns the cover art embedded in an audio file, or nil
// when the file carries none.
func ReadPicture(path string) (*tag.Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open %s: %w", path, err)
	}
	defer f.Close()

	tags, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("media: read tags from %s: %w", path, err)
	}
	return tags.Picture(), nil
}
