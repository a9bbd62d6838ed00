package model

// Source identifies where a metadata value came from.
//
// Every metadata value carried by this package is tagged with its origin
// so that conflicting values from different sources can be arbitrated
// later (see Resolve). The set is closed: nothing outside this package
// should invent new sources.
type Source int

const (
	// SourceEmbedded means the value was read from a tag embedded in the
	// audio file itself (ID3, Vorbis comment, ...). Embedded values are
	// authoritative and always win during resolution.
	SourceEmbedded Source = iota

	// SourceFolderInferred means the value was derived from the directory
	// layout (artist/album/track convention) or from the filename.
	SourceFolderInferred

	// SourceUserEdited means the value was set explicitly by the user.
	SourceUserEdited

	// SourceCueInferred means the value was taken from a sidecar CUE sheet.
	SourceCueInferred
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceEmbedded:
		return "embedded"
	case SourceFolderInferred:
		return "folder-inferred"
	case SourceUserEdited:
		return "user-edited"
	case SourceCueInferred:
		return "cue-inferred"
	default:
		return "unknown"
	}
}
