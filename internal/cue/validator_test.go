package cue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "album.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate_Consistent(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	result := Validate(path, []string{"/music/a/f.flac"})

	if !result.Valid {
		t.Errorf("Valid = false, want true: %+v", result)
	}
	if result.ParseFailure || result.MissingFile || result.TrackCountMismatch {
		t.Errorf("unexpected flags set: %+v", result)
	}
}

func TestValidate_CountsFilesNotTracks(t *testing.T) {
	// One FILE directive with five TRACK entries against exactly one
	// real audio file is consistent: the count compares FILE lines to
	// candidates, never TRACK entries.
	var sb strings.Builder
	sb.WriteString("FILE \"disc.flac\" WAVE\n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&sb, "  TRACK %02d AUDIO\n", i)
	}
	path := writeSheet(t, sb.String())

	result := Validate(path, []string{"/music/a/disc.flac"})

	if !result.Valid {
		t.Errorf("Valid = false, want true: %+v", result)
	}
}

func TestValidate_MissingFileChecksAllReferences(t *testing.T) {
	path := writeSheet(t, "FILE \"gone1.flac\" WAVE\nFILE \"here.flac\" WAVE\nFILE \"gone2.flac\" WAVE\n")

	result := Validate(path, []string{"/music/a/here.flac", "/music/a/other.flac", "/music/a/third.flac"})

	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if !result.MissingFile {
		t.Error("MissingFile = false, want true")
	}
	// No short-circuit: both unmatched references are reported.
	if len(result.Missing) != 2 {
		t.Errorf("Missing = %v, want both unmatched references", result.Missing)
	}
	// Counts happen to match, so only the missing-file flag fires.
	if result.TrackCountMismatch {
		t.Errorf("TrackCountMismatch = true, want false: %+v", result)
	}
}

func TestValidate_CountMismatch(t *testing.T) {
	path := writeSheet(t, "FILE \"a.flac\" WAVE\n")

	result := Validate(path, []string{"/m/a.flac", "/m/b.flac"})

	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if !result.TrackCountMismatch {
		t.Error("TrackCountMismatch = false, want true")
	}
	if result.MissingFile {
		t.Errorf("MissingFile = true, want false: %+v", result)
	}
}

func TestValidate_ParseFailureForcesMismatch(t *testing.T) {
	path := writeSheet(t, "PERFORMER unquoted\n")

	result := Validate(path, []string{"/m/a.flac"})

	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if !result.ParseFailure {
		t.Error("ParseFailure = false, want true")
	}
	if !result.TrackCountMismatch {
		t.Error("TrackCountMismatch should be forced on with a parse failure")
	}
	if result.ParseErr == "" {
		t.Error("ParseErr should carry the parse error message")
	}
}

func TestValidate_UnreadableSheet(t *testing.T) {
	result := Validate(filepath.Join(t.TempDir(), "nope.cue"), nil)

	if !result.ParseFailure || result.Valid {
		t.Errorf("unreadable sheet should report a parse failure: %+v", result)
	}
}

func TestValidation_ReportOrder(t *testing.T) {
	v := Validation{
		ParseFailure:       true,
		MissingFile:        true,
		TrackCountMismatch: true,
		ParseErr:           "cue: line 3: boom",
		Missing:            []string{"x.flac"},
	}

	report := v.Report()

	parseIdx := strings.Index(report, "parse error")
	missingIdx := strings.Index(report, "missing referenced file")
	countIdx := strings.Index(report, "file count")
	if parseIdx < 0 || missingIdx < 0 || countIdx < 0 {
		t.Fatalf("report incomplete:\n%s", report)
	}
	if !(parseIdx < missingIdx && missingIdx < countIdx) {
		t.Errorf("report sections out of order:\n%s", report)
	}

	if got := (Validation{Valid: true}).Report(); !strings.Contains(got, "consistent") {
		t.Errorf("valid report = %q", got)
	}
}
