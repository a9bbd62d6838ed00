package cue

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validation is the result of checking a CUE sheet against the audio
// files actually present. It is plain data, not an error: callers
// filter and render results as they see fit.
//
// The four flags are independent, except that a parse failure forces
// TrackCountMismatch on as a deliberately conservative signal — a
// sheet that cannot be parsed cannot be trusted to describe the right
// number of files either.
type Validation struct {
	// Valid is the overall verdict.
	Valid bool

	// ParseFailure is set when the sheet could not be read or parsed.
	ParseFailure bool

	// MissingFile is set when the sheet references a file that has no
	// matching candidate.
	MissingFile bool

	// TrackCountMismatch is set when the number of FILE directives
	// differs from the number of supplied candidates.
	TrackCountMismatch bool

	// ParseErr holds the parse error message when ParseFailure is set.
	ParseErr string

	// Missing lists every referenced filename that matched no
	// candidate, in sheet order.
	Missing []string
}

// Validate checks the CUE sheet at cuePath against audioFiles, the
// audio files of the same directory (the CUE file itself excluded).
//
// Every FILE reference must match some candidate by filename — paths
// are reduced to their base name, so the sheet's relative references
// match absolute candidates. All references are checked; validation
// never short-circuits on the first miss.
//
// The count check compares FILE directives against len(audioFiles),
// not TRACK entries: one physical file split into many logical tracks
// still counts as one file.
func Validate(cuePath string, audioFiles []string) Validation {
	sheet, err := ParseFile(cuePath)
	if err != nil {
		return Validation{
			ParseFailure:       true,
			TrackCountMismatch: true,
			ParseErr:           err.Error(),
		}
	}

	result := Validation{Valid: true}

	candidates := make(map[string]bool, len(audioFiles))
	for _, path := range audioFiles {
		candidates[filepath.Base(path)] = true
	}

	for _, ref := range sheet.Files {
		if !candidates[filepath.Base(ref)] {
			result.MissingFile = true
			result.Valid = false
			result.Missing = append(result.Missing, ref)
		}
	}

	if len(sheet.Files) != len(audioFiles) {
		result.TrackCountMismatch = true
		result.Valid = false
	}

	return result
}

// Report renders the validation as a fixed-order, human-readable
// summary: parse error first, then missing files, then the count
// mismatch. The order never varies with which flags are set.
func (v Validation) Report() string {
	if v.Valid {
		return "cue sheet is consistent\n"
	}

	var sb strings.Builder

	if v.ParseFailure {
		sb.WriteString(fmt.Sprintf("parse error: %s\n", v.ParseErr))
	}
	for _, name := range v.Missing {
		sb.WriteString(fmt.Sprintf("missing referenced file: %s\n", name))
	}
	if v.TrackCountMismatch {
		sb.WriteString("file count does not match the audio files present\n")
	}

	return sb.String()
}
