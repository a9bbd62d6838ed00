package media

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"
	"github.com/tcolgate/mp3"
)

// ErrUnsupportedFormat is returned when a path's extension is not in
// the format table.
var ErrUnsupportedFormat = errors.New("media: unsupported audio format")

// BasicInfo is the minimal metadata obtainable without full tag
// parsing: playing time and format name.
type BasicInfo struct {
	// Duration is the playing time in seconds, or 0 when the format
	// does not expose it cheaply.
	Duration float64

	// Format is the lowercase format name, e.g. "flac".
	Format string
}

// Prober looks up basic info for an audio file.
type Prober interface {
	Probe(path string) (BasicInfo, error)
}

// FileProber reads basic info straight from files on disk.
//
// FLAC duration comes from the STREAMINFO block, WAV from the RIFF
// header and MP3 from a full frame walk. WavPack and DSF report the
// format only; their duration stays 0 rather than paying for a decode.
type FileProber struct{}

// NewFileProber creates a new FileProber.
func NewFileProber() *FileProber {
	return &FileProber{}
}

// Probe implements Prober.
func (p *FileProber) Probe(path string) (BasicInfo, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return BasicInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	info := BasicInfo{Format: format.String()}

	var err error
	switch format {
	case FormatFlac:
		info.Duration, err = flacDuration(path)
	case FormatMp3:
		info.Duration, err = mp3Duration(path)
	case FormatWav:
		info.Duration, err = wavDuration(path)
	case FormatWv, FormatDsf:
		// Format known, duration not cheaply available.
	}
	if err != nil {
		return BasicInfo{}, fmt.Errorf("media: probe %s: %w", path, err)
	}

	return info, nil
}

func flacDuration(path string) (float64, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	if stream.Info == nil || stream.Info.SampleRate == 0 {
		return 0, nil
	}
	return float64(stream.Info.NSamples) / float64(stream.Info.SampleRate), nil
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	duration, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0, err
	}
	return duration.Seconds(), nil
}

func mp3Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := mp3.NewDecoder(f)
	var (
		frame   mp3.Frame
		skipped int
		total   float64
	)
	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || total > 0 {
				break
			}
			return 0, err
		}
		total += frame.Duration().Seconds()
	}
	return total, nil
}
