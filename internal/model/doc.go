// Package model defines the core data structures of tracknest: the
// provenance-tagged metadata value, the per-track metadata record, the
// track and album nodes, and the resolver that arbitrates between
// conflicting sources.
//
// # Provenance
//
// Every metadata value is wrapped in a Provenance carrying its source
// and a confidence score:
//
//	title := model.Embedded("Come Together")
//	album := model.FolderInferred("Abbey Road", 0.5)
//
// # Resolution
//
// Resolve picks one winning value for a field across a set of tracks.
// Embedded tags always beat heuristics; among heuristics the highest
// confidence wins and ties keep the earliest track's value:
//
//	genre, ok := model.Resolve(album.Tracks, func(t *model.Track) *model.Provenance[string] {
//		return t.Meta.Genre
//	})
package model
