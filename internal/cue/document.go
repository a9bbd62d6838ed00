package cue

// Sheet is a parsed CUE document.
//
// Album-level fields are empty strings when the sheet does not set
// them. Files keeps every FILE directive in sheet order, duplicates
// included; Tracks keeps every TRACK entry in sheet order.
type Sheet struct {
	// Performer is the album performer (unindented PERFORMER).
	Performer string

	// Title is the album title (unindented TITLE).
	Title string

	// Genre is the REM GENRE value.
	Genre string

	// Date is the REM DATE value, verbatim.
	Date string

	// Files lists every filename referenced by a FILE directive, in
	// order of appearance. Duplicates are preserved.
	Files []string

	// Tracks lists the AUDIO track entries in order of appearance.
	Tracks []Track
}

// Track is one TRACK entry of a CUE sheet.
//
// A Track only exists after a `TRACK NN AUDIO` line parsed
// successfully. File is whatever FILE directive most recently preceded
// the entry, or empty when the sheet declares the track before any
// FILE line.
type Track struct {
	// Number is the track number from the TRACK directive.
	Number uint

	// Title is the track title, or empty when absent.
	Title string

	// Performer is the track performer, or empty when absent.
	Performer string

	// Index is the INDEX time field verbatim ("mm:ss:ff"-shaped text),
	// or empty when absent.
	Index string

	// File is the filename from the preceding FILE directive.
	File string
}
