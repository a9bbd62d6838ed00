package cue

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseError describes the first malformed directive encountered while
// parsing a CUE sheet. Parsing is all-or-nothing: when a ParseError is
// returned no partial Sheet exists.
type ParseError struct {
	// Line is the 1-based line number of the offending line.
	Line int

	// Raw is the offending line as it appeared in the input.
	Raw string

	// Reason says what was wrong with the directive.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cue: line %d: %s: %q", e.Line, e.Reason, e.Raw)
}

// parser state: either at album level or inside an open TRACK entry.
type parserState int

const (
	stateAlbumLevel parserState = iota
	stateInTrack
)

// Parse parses CUE sheet text into a Sheet.
//
// The grammar is evaluated line by line; directives are classified by
// their first whitespace-delimited token and by whether the line is
// indented (two or more spaces, or a tab). Blank lines, comments and
// unknown directives are ignored. The first malformed directive aborts
// the whole parse with a *ParseError — downstream consumers must never
// act on a half-parsed sheet, so there is no accumulate-and-continue
// mode.
func Parse(text string) (*Sheet, error) {
	sheet := &Sheet{}

	state := stateAlbumLevel
	var open *Track
	currentFile := ""

	flush := func() {
		if open != nil {
			sheet.Tracks = append(sheet.Tracks, *open)
			open = nil
		}
		state = stateAlbumLevel
	}

	for _, l := range tokenize(text) {
		switch {
		case l.keyword == "PERFORMER" && !l.indented:
			value, ok := quotedValue(l.rest)
			if !ok {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "PERFORMER requires a quoted value"}
			}
			sheet.Performer = value

		case l.keyword == "TITLE" && !l.indented:
			value, ok := quotedValue(l.rest)
			if !ok {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "TITLE requires a quoted value"}
			}
			sheet.Title = value

		case l.keyword == "FILE":
			// FILE is honored at any indentation. It becomes the current
			// file context for subsequent TRACK entries and is appended
			// to the file list without deduplication.
			value, ok := quotedValue(l.rest)
			if !ok {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "FILE requires a quoted value"}
			}
			currentFile = value
			sheet.Files = append(sheet.Files, value)

		case l.keyword == "REM":
			parseRem(l, sheet)

		case l.keyword == "TRACK" && l.indented:
			fields := strings.Fields(l.rest)
			if len(fields) < 2 || fields[1] != "AUDIO" {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "TRACK requires a number and the AUDIO type"}
			}
			number, err := strconv.ParseUint(fields[0], 10, 32)
			if err != nil {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "TRACK number is not an unsigned integer"}
			}
			flush()
			open = &Track{Number: uint(number), File: currentFile}
			state = stateInTrack

		case l.keyword == "TITLE" && l.indented && state == stateInTrack:
			value, ok := quotedValue(l.rest)
			if !ok {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "TITLE requires a quoted value"}
			}
			open.Title = value

		case l.keyword == "PERFORMER" && l.indented && state == stateInTrack:
			value, ok := quotedValue(l.rest)
			if !ok {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "PERFORMER requires a quoted value"}
			}
			open.Performer = value

		case l.keyword == "INDEX" && l.indented && state == stateInTrack:
			fields := strings.Fields(l.rest)
			if len(fields) == 0 {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "INDEX requires a number"}
			}
			if _, err := strconv.ParseUint(fields[0], 10, 32); err != nil {
				return nil, &ParseError{Line: l.number, Raw: l.raw, Reason: "INDEX number is not an unsigned integer"}
			}
			// The time field is kept verbatim; nothing downstream needs
			// it decoded into frames.
			open.Index = strings.TrimSpace(strings.TrimPrefix(l.rest, fields[0]))

		default:
			// Blank lines, comments, unknown directives and track-level
			// directives with no open entry are ignored.
		}
	}

	flush()
	return sheet, nil
}

// parseRem handles REM GENRE and REM DATE lines. All other REM lines
// are comments and are ignored.
func parseRem(l line, sheet *Sheet) {
	fields := strings.Fields(l.rest)
	if len(fields) == 0 {
		return
	}

	remainder := strings.TrimSpace(strings.TrimPrefix(l.rest, fields[0]))

	switch strings.ToUpper(fields[0]) {
	case "GENRE":
		// Quoted value when present, trimmed remainder otherwise.
		if value, ok := quotedValue(remainder); ok {
			sheet.Genre = value
		} else if remainder != "" {
			sheet.Genre = remainder
		}
	case "DATE":
		// Not quote-aware: the remainder is taken verbatim.
		if remainder != "" {
			sheet.Date = remainder
		}
	}
}

// ParseFile reads and parses the CUE sheet at path.
func ParseFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cue: read %s: %w", path, err)
	}
	return Parse(string(data))
}
