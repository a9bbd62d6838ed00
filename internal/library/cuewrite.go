package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tracknest/internal/cue"
	ioutils "tracknest/internal/io"
	"tracknest/internal/model"
)

// WriteCueSheets generates and writes a CUE sheet for every album that
// does not already have one. Existing sheets are never overwritten.
// Returns the paths of the sheets written.
func WriteCueSheets(albums []*model.AlbumNode) ([]string, error) {
	generator := cue.NewGenerator()
	var written []string

	for _, album := range albums {
		has, err := hasCueSheet(album.Path)
		if err != nil {
			return written, err
		}
		if has {
			continue
		}

		name := ioutils.SanitizeFileName(album.Title)
		if name == "" {
			name = "album"
		}
		path := filepath.Join(album.Path, name+".cue")

		if err := ioutils.WriteFile(path, []byte(generator.Generate(album))); err != nil {
			return written, fmt.Errorf("library: write cue for %s: %w", album.Path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

func hasCueSheet(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("library: list %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".cue") {
			return true, nil
		}
	}
	return false, nil
}
