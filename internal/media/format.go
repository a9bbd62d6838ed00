package media

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported audio container.
//
// The set is closed; adapters are selected through the process-wide
// extension table below, built once and never reconstructed per call.
type Format int

const (
	FormatFlac Format = iota
	FormatMp3
	FormatWav
	FormatWv
	FormatDsf
)

// String returns the conventional lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatFlac:
		return "flac"
	case FormatMp3:
		return "mp3"
	case FormatWav:
		return "wav"
	case FormatWv:
		return "wv"
	case FormatDsf:
		return "dsf"
	default:
		return "unknown"
	}
}

// formatByExt maps lowercase file extensions to formats. Immutable
// after initialization.
var formatByExt = map[string]Format{
	".flac": FormatFlac,
	".mp3":  FormatMp3,
	".wav":  FormatWav,
	".wv":   FormatWv,
	".dsf":  FormatDsf,
}

// FormatForPath looks the file's extension up in the format table.
// The match is case-insensitive.
func FormatForPath(path string) (Format, bool) {
	format, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// Supported reports whether path has a recognized audio extension.
func Supported(path string) bool {
	_, ok := FormatForPath(path)
	return ok
}
