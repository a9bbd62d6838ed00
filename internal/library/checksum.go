package library

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"tracknest/internal/model"
)

// Checksum computes the hex-encoded SHA-1 of a file's content.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("library: checksum %s: %w", path, err)
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("library: checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DetectDuplicates fills the checksum of every track across the given
// albums and returns the groups of paths sharing identical content.
// Tracks whose files cannot be read keep an empty checksum and are
// excluded from grouping.
func DetectDuplicates(albums []*model.AlbumNode) map[string][]string {
	byChecksum := make(map[string][]string)
	byPath := make(map[string]string)

	for _, album := range albums {
		for _, track := range album.Tracks {
			sum, seen := byPath[track.Path]
			if !seen {
				var err error
				sum, err = Checksum(track.Path)
				if err != nil {
					byPath[track.Path] = ""
					continue
				}
				byPath[track.Path] = sum
				// Several logical tracks may share one physical file;
				// it participates in grouping once.
				byChecksum[sum] = append(byChecksum[sum], track.Path)
			}
			track.Checksum = sum
		}
	}

	duplicates := make(map[string][]string)
	for sum, paths := range byChecksum {
		if len(paths) > 1 {
			duplicates[sum] = paths
		}
	}
	return duplicates
}
