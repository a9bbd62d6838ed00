package media

import "testing"

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"/music/a/track.flac", FormatFlac, true},
		{"/music/a/TRACK.FLAC", FormatFlac, true},
		{"track.mp3", FormatMp3, true},
		{"track.wav", FormatWav, true},
		{"track.wv", FormatWv, true},
		{"track.dsf", FormatDsf, true},
		{"track.ogg", 0, false},
		{"album.cue", 0, false},
		{"noext", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FormatForPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("FormatForPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatFlac, "flac"},
		{FormatMp3, "mp3"},
		{FormatWav, "wav"},
		{FormatWv, "wv"},
		{FormatDsf, "dsf"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestProbe_UnsupportedFormat(t *testing.T) {
	_, err := NewFileProber().Probe("/tmp/file.ogg")
	if err == nil {
		t.Fatal("Probe() expected error for unsupported extension")
	}
}
