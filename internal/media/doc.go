// Package media adapts third-party format libraries behind the two
// collaborator interfaces the rest of tracknest consumes: a basic-info
// lookup (duration and format, no tag parsing) and an embedded-tag
// reader producing provenance-tagged metadata records.
//
// Supported formats are a closed set — FLAC, MP3, WAV, WavPack and
// DSF — dispatched through a static extension table built once at
// package load.
//
//	info, err := prober.Probe("/music/a/track.flac")
//	record, err := media.ReadEmbedded("/music/a/track.flac")
package media
