package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tracknest/internal/scan"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	LibraryPaths []string `json:"library_paths"`

	// Scan settings
	MaxDepth         int      `json:"max_depth"`
	FollowSymlinks   bool     `json:"follow_symlinks"`
	ExcludePatterns  []string `json:"exclude_patterns"`
	FolderConfidence float64  `json:"folder_confidence"`

	// Maintenance settings
	WriteCueSheets bool `json:"write_cue_sheets"`
	ExportArtwork  bool `json:"export_artwork"`
	ArtworkMaxSize int  `json:"artwork_max_size"`

	// Output settings
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		LibraryPaths:     []string{filepath.Join(homeDir, "Music")},
		MaxDepth:         0,
		FollowSymlinks:   false,
		ExcludePatterns:  []string{".*"},
		FolderConfidence: scan.DefaultFolderConfidence,

		WriteCueSheets: false,
		ExportArtwork:  false,
		ArtworkMaxSize: 1000,

		Verbose: false,
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults, not an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ScanOptions converts settings to scanner options.
func (s *Settings) ScanOptions() scan.Options {
	return scan.Options{
		MaxDepth:         s.MaxDepth,
		FollowSymlinks:   s.FollowSymlinks,
		Excludes:         s.ExcludePatterns,
		FolderConfidence: s.FolderConfidence,
	}
}
