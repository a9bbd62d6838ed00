// Package tagger writes resolved metadata records back into audio
// files. Only MP3 (ID3v2) is supported for writing; the other formats
// tracknest reads are treated as read-only.
package tagger

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"

	"tracknest/internal/media"
	"tracknest/internal/model"
)

// Action defines how to handle one tag field when applying a record.
type Action int

const (
	// ActionApply writes the record's value when the record supplies
	// one and leaves the existing tag alone otherwise.
	ActionApply Action = iota

	// ActionClear removes the existing tag value.
	ActionClear

	// ActionKeep leaves the existing tag value unchanged.
	ActionKeep
)

// Config selects an Action per tag field, allowing fine-grained
// control over which tags an apply run touches.
//
// Example:
//
//	cfg := tagger.DefaultConfig()
//	cfg.Genre = tagger.ActionKeep // trust the file's own genre
type Config struct {
	Title       Action
	Artist      Action
	AlbumArtist Action
	Album       Action
	Genre       Action
	Year        Action
	TrackNumber Action
	DiscNumber  Action
}

// DefaultConfig applies every field the record supplies.
func DefaultConfig() *Config {
	return &Config{}
}

// Tagger applies metadata records to MP3 files.
//
// Values written come from resolved records, so the provenance
// arbitration has already happened by the time a tag is touched:
//
//	tagger := tagger.New(nil)
//	err := tagger.Apply(record)
type Tagger struct {
	config *Config
}

// New creates a Tagger. A nil config selects DefaultConfig.
func New(config *Config) *Tagger {
	if config == nil {
		config = DefaultConfig()
	}
	return &Tagger{config: config}
}

// Apply writes the record's fields into the ID3v2 tag of the file at
// record.Path according to the per-field actions.
func (t *Tagger) Apply(record *model.Metadata) error {
	if format, ok := media.FormatForPath(record.Path); !ok || format != media.FormatMp3 {
		return fmt.Errorf("tagger: %s: only mp3 files can be written", record.Path)
	}

	tag, err := id3v2.Open(record.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("tagger: open %s: %w", record.Path, err)
	}
	defer tag.Close()

	applyText(tag, t.config.Title, record.Title, tag.SetTitle, "TIT2")
	applyText(tag, t.config.Artist, record.Artist, tag.SetArtist, "TPE1")
	applyText(tag, t.config.Album, record.Album, tag.SetAlbum, "TALB")
	applyText(tag, t.config.Genre, record.Genre, tag.SetGenre, "TCON")
	applyFrame(tag, t.config.AlbumArtist, record.AlbumArtist, "TPE2")
	applyNumber(tag, t.config.Year, record.Year, "TYER")
	applyNumber(tag, t.config.TrackNumber, record.TrackNumber, "TRCK")
	applyNumber(tag, t.config.DiscNumber, record.DiscNumber, "TPOS")

	if err := tag.Save(); err != nil {
		return fmt.Errorf("tagger: save %s: %w", record.Path, err)
	}
	return nil
}

// applyText handles the fields id3v2 exposes through setters.
func applyText(tag *id3v2.Tag, action Action, value *model.Provenance[string], set func(string), frameID string) {
	switch action {
	case ActionClear:
		tag.DeleteFrames(frameID)
	case ActionApply:
		if value != nil {
			set(value.Value)
		}
	}
}

// applyFrame handles text frames without a dedicated setter.
func applyFrame(tag *id3v2.Tag, action Action, value *model.Provenance[string], frameID string) {
	switch action {
	case ActionClear:
		tag.DeleteFrames(frameID)
	case ActionApply:
		if value != nil {
			tag.AddTextFrame(frameID, id3v2.EncodingUTF8, value.Value)
		}
	}
}

func applyNumber(tag *id3v2.Tag, action Action, value *model.Provenance[uint], frameID string) {
	switch action {
	case ActionClear:
		tag.DeleteFrames(frameID)
	case ActionApply:
		if value != nil {
			tag.AddTextFrame(frameID, id3v2.EncodingUTF8, strconv.FormatUint(uint64(value.Value), 10))
		}
	}
}
