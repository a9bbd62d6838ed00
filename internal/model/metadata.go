package model

// Metadata is the normalized, provenance-tagged metadata record for one
// track.
//
// Every tag-like field is optional (nil when no source supplied it) and
// carries its own provenance, so the same record can mix, say, an
// embedded title with a folder-inferred album. Format and Path are
// mandatory facts about the file, not metadata claims, and carry no
// provenance.
//
// Records are created once per file — by a tag adapter or by the
// scanner — and treated as immutable snapshots afterwards.
type Metadata struct {
	Title       *Provenance[string]
	Artist      *Provenance[string]
	Album       *Provenance[string]
	AlbumArtist *Provenance[string]
	Genre       *Provenance[string]

	TrackNumber *Provenance[uint]
	DiscNumber  *Provenance[uint]
	Year        *Provenance[uint]

	// Duration is the playing time in seconds.
	Duration *Provenance[float64]

	// Format is the audio format name, e.g. "flac" or "mp3".
	Format string

	// Path is the file the record describes.
	Path string
}
