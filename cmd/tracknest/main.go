package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"tracknest/internal/artwork"
	"tracknest/internal/config"
	"tracknest/internal/cue"
	"tracknest/internal/library"
	"tracknest/internal/media"
	"tracknest/internal/model"
	"tracknest/internal/scan"
)

func main() {
	// Command line flags
	var (
		scanFlag       = flag.String("scan", "", "Library path(s) to scan (comma-separated)")
		validateFlag   = flag.String("validate", "", "CUE sheet to validate")
		againstFlag    = flag.String("against", "", "Directory of audio files to validate the CUE sheet against")
		writeCueFlag   = flag.Bool("write-cue", false, "Write a CUE sheet for every album that lacks one")
		duplicatesFlag = flag.Bool("duplicates", false, "Detect files with identical content")
		artworkFlag    = flag.Bool("export-artwork", false, "Export embedded artwork next to each album")
		configFlag     = flag.String("config", "", "Path to config file")
		depthFlag      = flag.Int("depth", 0, "Maximum scan depth (overrides config)")
		excludeFlag    = flag.String("exclude", "", "Glob patterns to exclude (comma-separated, overrides config)")
		symlinksFlag   = flag.Bool("follow-symlinks", false, "Follow symbolic links while scanning")
		jsonFlag       = flag.Bool("json", false, "Print scan results as JSON")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *validateFlag != "" {
		validate(*validateFlag, *againstFlag)
		return
	}

	roots := *scanFlag
	if roots == "" && flag.NArg() > 0 {
		roots = flag.Arg(0)
	}
	if roots == "" {
		fmt.Println("Tracknest - Organize your music library")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  tracknest -scan <PATH> [options]")
		fmt.Println("  tracknest <PATH> [options]")
		fmt.Println("  tracknest -validate <CUE> -against <DIR>")
		fmt.Println()
		fmt.Println("For interactive mode, use: tracknest-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *depthFlag > 0 {
		settings.MaxDepth = *depthFlag
	}
	if *excludeFlag != "" {
		settings.ExcludePatterns = splitList(*excludeFlag)
	}
	if *symlinksFlag {
		settings.FollowSymlinks = true
	}
	if *writeCueFlag {
		settings.WriteCueSheets = true
	}
	if *artworkFlag {
		settings.ExportArtwork = true
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	onEvent := func(event scan.Event) {
		if event.Level == scan.LevelVerbose && !settings.Verbose {
			return
		}

		prefix := "   "
		switch event.Level {
		case scan.LevelError:
			prefix = "❌ "
		case scan.LevelWarning:
			prefix = "⚠️  "
		case scan.LevelSuccess:
			prefix = "✅ "
		case scan.LevelInfo:
			prefix = "ℹ️  "
		}

		fmt.Println(prefix + event.Message)
	}

	fmt.Println("🎵 Tracknest")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	prober := media.NewFileProber()
	records, err := library.ScanRoots(splitList(roots), settings.ScanOptions(), prober, onEvent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning: %v\n", err)
		os.Exit(1)
	}

	albums := library.GroupAlbums(records)

	if *duplicatesFlag {
		reportDuplicates(library.DetectDuplicates(albums))
	}

	if settings.WriteCueSheets {
		written, err := library.WriteCueSheets(albums)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing cue sheets: %v\n", err)
			os.Exit(1)
		}
		for _, path := range written {
			fmt.Printf("✅ Wrote %s\n", path)
		}
	}

	if settings.ExportArtwork {
		exportArtwork(albums, settings.ArtworkMaxSize)
	}

	if *jsonFlag {
		if err := json.NewEncoder(os.Stdout).Encode(records); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Found %d track(s) across %d album(s)\n", len(records), len(albums))
	for _, album := range albums {
		fmt.Printf("   ♪ %s (%d tracks)\n", album.Title, len(album.Tracks))
	}
}

// validate checks one CUE sheet against the audio files in a directory
// and prints the findings.
func validate(cuePath, dir string) {
	if dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -validate requires -against <DIR>")
		os.Exit(1)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", dir, err)
		os.Exit(1)
	}

	var audioFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && media.Supported(entry.Name()) {
			audioFiles = append(audioFiles, entry.Name())
		}
	}

	result := cue.Validate(cuePath, audioFiles)
	fmt.Println(result.Report())
	if !result.Valid {
		os.Exit(1)
	}
}

func reportDuplicates(duplicates map[string][]string) {
	if len(duplicates) == 0 {
		fmt.Println("ℹ️  No duplicate files found")
		return
	}
	for sum, paths := range duplicates {
		fmt.Printf("⚠️  Duplicate content (%s):\n", sum[:12])
		for _, path := range paths {
			fmt.Printf("     %s\n", path)
		}
	}
}

func exportArtwork(albums []*model.AlbumNode, maxSize int) {
	exporter := artwork.NewExporter(maxSize)
	for _, album := range albums {
		if len(album.Tracks) == 0 {
			continue
		}
		path, err := exporter.Export(album.Tracks[0].Path, album.Path)
		if err != nil {
			if !errors.Is(err, artwork.ErrNoArtwork) {
				fmt.Fprintf(os.Stderr, "⚠️  Artwork for %s: %v\n", album.Title, err)
			}
			continue
		}
		fmt.Printf("✅ Exported artwork to %s\n", path)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
