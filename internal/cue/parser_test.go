package cue

import (
	"errors"
	"strings"
	"testing"
)

const sampleSheet = `PERFORMER "A"
TITLE "B"
FILE "f.flac" WAVE
  TRACK 01 AUDIO
    TITLE "T1"
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "T2"
    INDEX 01 00:03:00
`

func TestParse_SingleFileTwoTracks(t *testing.T) {
	sheet, err := Parse(sampleSheet)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if sheet.Performer != "A" {
		t.Errorf("Performer = %q, want %q", sheet.Performer, "A")
	}
	if sheet.Title != "B" {
		t.Errorf("Title = %q, want %q", sheet.Title, "B")
	}
	if len(sheet.Files) != 1 || sheet.Files[0] != "f.flac" {
		t.Errorf("Files = %v, want [f.flac]", sheet.Files)
	}
	if len(sheet.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(sheet.Tracks))
	}

	want := []Track{
		{Number: 1, Title: "T1", Index: "00:00:00", File: "f.flac"},
		{Number: 2, Title: "T2", Index: "00:03:00", File: "f.flac"},
	}
	for i, tr := range sheet.Tracks {
		if tr != want[i] {
			t.Errorf("Tracks[%d] = %+v, want %+v", i, tr, want[i])
		}
	}
}

func TestParse_RemDirectives(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantGenre string
		wantDate  string
	}{
		{"unquoted genre", "REM GENRE Rock\n", "Rock", ""},
		{"quoted genre", "REM GENRE \"Progressive Rock\"\n", "Progressive Rock", ""},
		{"empty genre stays unset", "REM GENRE\n", "", ""},
		{"date verbatim", "REM DATE 2024\n", "", "2024"},
		{"date not quote-aware", "REM DATE \"2024\"\n", "", "\"2024\""},
		{"other rem ignored", "REM COMMENT ExactAudioCopy\n", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if sheet.Genre != tt.wantGenre {
				t.Errorf("Genre = %q, want %q", sheet.Genre, tt.wantGenre)
			}
			if sheet.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", sheet.Date, tt.wantDate)
			}
		})
	}
}

func TestParse_MultipleFiles(t *testing.T) {
	input := `FILE "01.flac" WAVE
  TRACK 01 AUDIO
FILE "02.flac" WAVE
  TRACK 02 AUDIO
FILE "02.flac" WAVE
  TRACK 03 AUDIO
`
	sheet, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Duplicate FILE lines are preserved in order.
	if len(sheet.Files) != 3 {
		t.Errorf("len(Files) = %d, want 3 (no dedup)", len(sheet.Files))
	}
	if sheet.Tracks[0].File != "01.flac" || sheet.Tracks[1].File != "02.flac" || sheet.Tracks[2].File != "02.flac" {
		t.Errorf("track file contexts wrong: %+v", sheet.Tracks)
	}
}

func TestParse_TrackBeforeAnyFile(t *testing.T) {
	sheet, err := Parse("  TRACK 01 AUDIO\n    TITLE \"T\"\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sheet.Tracks) != 1 {
		t.Fatalf("len(Tracks) = %d, want 1", len(sheet.Tracks))
	}
	if sheet.Tracks[0].File != "" {
		t.Errorf("File = %q, want empty (no FILE context)", sheet.Tracks[0].File)
	}
}

func TestParse_IgnoredLines(t *testing.T) {
	input := "\nREM\nCATALOG 0000000000000\n    TITLE \"orphan track title\"\nBOGUS line\n\t\n"
	sheet, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if sheet.Title != "" || len(sheet.Tracks) != 0 {
		t.Errorf("ignored lines leaked into sheet: %+v", sheet)
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"unquoted performer", "PERFORMER A\n", 1},
		{"unquoted album title", "TITLE B\n", 1},
		{"unquoted file", "FILE f.flac WAVE\n", 1},
		{"non-audio track", "FILE \"f.flac\" WAVE\n  TRACK 01 DATA\n", 2},
		{"bad track number", "FILE \"f.flac\" WAVE\n  TRACK xx AUDIO\n", 2},
		{"bad index number", "FILE \"f.flac\" WAVE\n  TRACK 01 AUDIO\n    INDEX xx 00:00:00\n", 3},
		{"unquoted track title", "FILE \"f.flac\" WAVE\n  TRACK 01 AUDIO\n    TITLE oops\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Parse(tt.input)
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if sheet != nil {
				t.Error("Parse() returned a partial sheet alongside an error")
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", perr.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), perr.Raw) {
				t.Errorf("error message %q does not cite the raw line %q", err.Error(), perr.Raw)
			}
		})
	}
}

func TestParse_MalformedIndexAfterValidLines(t *testing.T) {
	// N well-formed lines followed by one malformed INDEX must fail
	// citing line N+1 and yield no document at all.
	input := sampleSheet + "    INDEX zz 00:05:00\n"
	lines := strings.Count(sampleSheet, "\n") + 1

	sheet, err := Parse(input)
	if err == nil {
		t.Fatal("Parse() expected error")
	}
	if sheet != nil {
		t.Error("Parse() yielded a partial document")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *ParseError", err)
	}
	if perr.Line != lines {
		t.Errorf("ParseError.Line = %d, want %d", perr.Line, lines)
	}
}

func TestParse_EOFFlushesOpenTrack(t *testing.T) {
	sheet, err := Parse("FILE \"f.flac\" WAVE\n  TRACK 07 AUDIO")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sheet.Tracks) != 1 || sheet.Tracks[0].Number != 7 {
		t.Errorf("Tracks = %+v, want the open entry flushed at EOF", sheet.Tracks)
	}
}
