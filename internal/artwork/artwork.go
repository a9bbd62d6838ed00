// Package artwork exports cover art embedded in audio files to a
// folder image, resizing it on the way.
package artwork

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"path/filepath"

	"golang.org/x/image/draw"

	ioutils "tracknest/internal/io"
	"tracknest/internal/media"
)

// ErrNoArtwork is returned when a file carries no embedded picture.
var ErrNoArtwork = errors.New("artwork: no embedded picture")

// FileName is the conventional folder image name most players pick up.
const FileName = "folder.jpg"

// Exporter extracts embedded cover art and writes it as a resized
// JPEG next to the album's files.
//
// Example:
//
//	exporter := artwork.NewExporter(1000)
//	path, err := exporter.Export("/music/a/01.flac", "/music/a")
type Exporter struct {
	maxWidth  int
	maxHeight int
}

// NewExporter creates an Exporter that fits images within
// maxSize×maxSize pixels.
func NewExporter(maxSize int) *Exporter {
	return &Exporter{maxWidth: maxSize, maxHeight: maxSize}
}

// Export reads the picture embedded in trackPath and writes it to
// destDir as folder.jpg. Returns the written path, or ErrNoArtwork
// when the file has no embedded picture.
func (e *Exporter) Export(trackPath, destDir string) (string, error) {
	pic, err := media.ReadPicture(trackPath)
	if err != nil {
		return "", err
	}
	if pic == nil || len(pic.Data) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoArtwork, trackPath)
	}

	data, err := e.Resize(pic.Data)
	if err != nil {
		return "", fmt.Errorf("artwork: resize picture from %s: %w", trackPath, err)
	}

	out := filepath.Join(destDir, FileName)
	if err := ioutils.WriteFile(out, data); err != nil {
		return "", fmt.Errorf("artwork: write %s: %w", out, err)
	}
	return out, nil
}

// Resize scales image data to fit within the exporter's maximum
// dimensions, preserving the aspect ratio, and re-encodes it as JPEG.
// Images already within bounds are re-encoded unchanged in size.
// Catmull-Rom interpolation keeps the downscale quality high.
func (e *Exporter) Resize(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > e.maxWidth || height > e.maxHeight {
		ratio := float64(width) / float64(height)
		if float64(e.maxWidth)/float64(e.maxHeight) > ratio {
			width = int(float64(e.maxHeight) * ratio)
			height = e.maxHeight
		} else {
			height = int(float64(e.maxWidth) / ratio)
			width = e.maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
