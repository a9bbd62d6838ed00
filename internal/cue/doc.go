// Package cue implements the CUE sheet subsystem: parsing sidecar .cue
// files into a structured document, generating deterministic CUE text
// for an album, and validating a sheet against the audio files actually
// present on disk.
//
// # Parsing
//
// Parse is strict and local: the first malformed directive aborts the
// whole parse with a line-annotated error, and no partial document is
// ever returned. Unknown directives, comments and blank lines are
// silently ignored.
//
//	sheet, err := cue.Parse(text)
//	if err != nil {
//	    var perr *cue.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Line, perr.Raw)
//	    }
//	}
//
// # Generation
//
// Generate renders an album back into CUE text, resolving conflicting
// metadata sources through the model resolver. Output is deterministic:
// the same album always produces byte-identical text.
//
// # Validation
//
// Validate checks a sheet against a candidate file listing and returns
// plain data (four independent flags), never an error, so callers can
// filter and render results freely.
package cue
