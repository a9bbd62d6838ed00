package model

// Provenance pairs a metadata value with its source and a confidence
// score in [0.0, 1.0].
//
// Values are never mutated after construction: resolution and merging
// always produce new values. Use the constructors below rather than
// building the struct directly, so the source/confidence conventions
// stay consistent across the codebase:
//
//	title := model.Embedded("Abbey Road")          // confidence 1.0
//	album := model.FolderInferred("Abbey Road", 0.5)
//	year := model.CueInferred(uint(1969), 1.0)
//	fix := model.UserEdited("Abbey Road (Remaster)") // confidence 1.0
type Provenance[T any] struct {
	// Value is the metadata value itself.
	Value T

	// Source records where the value came from.
	Source Source

	// Confidence is how much the producing source trusts the value,
	// from 0.0 (a wild guess) to 1.0 (certain).
	Confidence float64
}

// Embedded wraps a value read from an embedded file tag.
// Embedded values always carry confidence 1.0.
func Embedded[T any](value T) *Provenance[T] {
	return &Provenance[T]{Value: value, Source: SourceEmbedded, Confidence: 1.0}
}

// FolderInferred wraps a value derived from the directory layout or
// filename, with a caller-supplied confidence.
func FolderInferred[T any](value T, confidence float64) *Provenance[T] {
	return &Provenance[T]{Value: value, Source: SourceFolderInferred, Confidence: confidence}
}

// UserEdited wraps a value set explicitly by the user.
// User edits always carry confidence 1.0.
func UserEdited[T any](value T) *Provenance[T] {
	return &Provenance[T]{Value: value, Source: SourceUserEdited, Confidence: 1.0}
}

// CueInferred wraps a value taken from a CUE sheet, with a
// caller-supplied confidence.
func CueInferred[T any](value T, confidence float64) *Provenance[T] {
	return &Provenance[T]{Value: value, Source: SourceCueInferred, Confidence: confidence}
}
