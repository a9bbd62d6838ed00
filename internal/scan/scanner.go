package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"tracknest/internal/cue"
	"tracknest/internal/infer"
	"tracknest/internal/media"
	"tracknest/internal/model"
)

// DefaultFolderConfidence is the confidence attached to values derived
// from the directory layout when Options does not override it.
const DefaultFolderConfidence = 0.5

// Options control a scan.
type Options struct {
	// MaxDepth limits how many directory levels below the base path
	// are visited. 0 means unlimited.
	MaxDepth int

	// FollowSymlinks makes the walker descend into symlinked
	// directories and accept symlinked files.
	FollowSymlinks bool

	// Excludes are glob patterns matched against base names; matching
	// files and directories are skipped entirely.
	Excludes []string

	// FolderConfidence is the confidence attached to folder-inferred
	// values. 0 selects DefaultFolderConfidence.
	FolderConfidence float64
}

// Scanner produces metadata records from a directory tree in two
// passes.
//
// Pass 1 walks directories and consumes at most one CUE sheet per
// directory: a successfully parsed sheet yields one cue-inferred
// record per track entry and marks the directory consumed. Pass 2
// walks files, skips consumed directories, and yields one
// inference-only record per remaining supported audio file. The split
// exists so an album fully described by a CUE sheet is represented
// once, at CUE granularity, and never duplicated by the per-file pass.
//
// A Scanner holds no state across calls; independent scans may run
// concurrently since each only reads the filesystem.
//
// Example:
//
//	scanner := scan.New(scan.Options{}, media.NewFileProber(), func(e scan.Event) {
//	    fmt.Println(e.Message)
//	})
//	records, err := scanner.Scan("/music")
type Scanner struct {
	opts    Options
	prober  media.Prober
	onEvent func(Event)
}

// New creates a Scanner. prober supplies basic info for CUE-referenced
// files; onEvent receives progress events and may be nil.
func New(opts Options, prober media.Prober, onEvent func(Event)) *Scanner {
	if opts.FolderConfidence == 0 {
		opts.FolderConfidence = DefaultFolderConfidence
	}
	return &Scanner{opts: opts, prober: prober, onEvent: onEvent}
}

// Scan walks the tree under base and returns one metadata record per
// logical track, stable-sorted by filename. Repeated scans of an
// unchanged tree reproduce identical output byte for byte.
//
// The only fatal error is a missing or non-directory base path; every
// per-file problem is reported as an event and skipped.
func (s *Scanner) Scan(base string) ([]*model.Metadata, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("scan: base path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan: base path %s is not a directory", base)
	}

	consumed := make(map[string]bool)
	var records []*model.Metadata

	// Pass 1: CUE discovery, directory by directory.
	s.walkDirs(base, 0, func(dir string) {
		records = append(records, s.scanCueDir(dir, consumed)...)
	})

	// Pass 2: remaining files.
	s.walkFiles(base, 0, func(path string) {
		if consumed[filepath.Dir(path)] {
			return
		}
		if record := s.scanFile(path); record != nil {
			records = append(records, record)
		}
	})

	sort.SliceStable(records, func(i, j int) bool {
		return filepath.Base(records[i].Path) < filepath.Base(records[j].Path)
	})

	return records, nil
}

// scanCueDir looks for a CUE sheet in dir and, when one parses, emits
// a record per track entry and marks the directory consumed.
//
// When several .cue files exist the candidates are taken in sorted
// directory order and the first wins; on a parse failure the directory
// is left unconsumed so the file pass handles it normally.
func (s *Scanner) scanCueDir(dir string, consumed map[string]bool) []*model.Metadata {
	cuePath, ok := s.findCueSheet(dir)
	if !ok {
		return nil
	}

	sheet, err := cue.ParseFile(cuePath)
	if err != nil {
		s.event(LevelWarning, fmt.Sprintf("cue sheet %s ignored: %v", cuePath, err))
		return nil
	}

	folderArtist, hasFolderArtist := infer.ArtistForDir(dir)
	folderAlbum, hasFolderAlbum := infer.AlbumForDir(dir)

	var records []*model.Metadata
	for _, entry := range sheet.Tracks {
		if entry.File == "" {
			s.event(LevelWarning, fmt.Sprintf("cue sheet %s: track %02d has no FILE; dropped", cuePath, entry.Number))
			continue
		}

		path := filepath.Join(dir, entry.File)
		record := &model.Metadata{Path: path}

		if info, err := s.prober.Probe(path); err != nil {
			s.event(LevelVerbose, fmt.Sprintf("basic info for %s unavailable: %v", path, err))
		} else {
			record.Format = info.Format
			if info.Duration > 0 {
				record.Duration = model.Embedded(info.Duration)
			}
		}

		if entry.Title != "" {
			record.Title = model.CueInferred(entry.Title, 1.0)
		}
		record.TrackNumber = model.CueInferred(entry.Number, 1.0)

		// The track performer when the sheet names one, the folder
		// heuristic otherwise.
		if entry.Performer != "" {
			record.Artist = model.CueInferred(entry.Performer, 1.0)
		} else if hasFolderArtist {
			record.Artist = model.FolderInferred(folderArtist, s.opts.FolderConfidence)
		}

		if sheet.Performer != "" {
			record.AlbumArtist = model.CueInferred(sheet.Performer, 1.0)
		}
		if sheet.Genre != "" {
			record.Genre = model.CueInferred(sheet.Genre, 1.0)
		}
		if year, err := strconv.ParseUint(strings.TrimSpace(sheet.Date), 10, 32); err == nil {
			record.Year = model.CueInferred(uint(year), 1.0)
		}

		// CUE has no per-track album field, so the album is always the
		// folder-inferred one; disc number stays absent.
		if hasFolderAlbum {
			record.Album = model.FolderInferred(folderAlbum, s.opts.FolderConfidence)
		}

		records = append(records, record)
	}

	consumed[dir] = true
	s.event(LevelSuccess, fmt.Sprintf("%s: %d tracks from cue sheet", dir, len(records)))
	return records
}

// findCueSheet returns the first file in dir with a .cue extension,
// case-insensitively, from a single directory listing. os.ReadDir
// sorts entries, so the choice is deterministic when several exist.
func (s *Scanner) findCueSheet(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() || s.excluded(entry.Name()) {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".cue") {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// scanFile synthesizes an inference-only record for one audio file, or
// returns nil when the file is skipped.
func (s *Scanner) scanFile(path string) *model.Metadata {
	format, ok := media.FormatForPath(path)
	if !ok {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		s.event(LevelWarning, fmt.Sprintf("skipping %s: %v", path, err))
		return nil
	}
	if info.Size() == 0 {
		s.event(LevelWarning, fmt.Sprintf("skipping %s: empty file", path))
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		s.event(LevelWarning, fmt.Sprintf("skipping %s: %v", path, err))
		return nil
	}
	f.Close()

	record := &model.Metadata{
		Format: format.String(),
		Path:   path,
	}

	artist, hasArtist := infer.ArtistForFile(path)
	album, hasAlbum := infer.AlbumForFile(path)

	// Filename heuristics only step in where the folder layout says
	// nothing. Title and track number stay absent: they would require
	// full tag parsing, which is deliberately out of the scanner.
	if !hasAlbum {
		guess := infer.FromFilename(path)
		if guess.Album != "" {
			album, hasAlbum = guess.Album, true
		}
		if !hasArtist && guess.Artist != "" {
			artist, hasArtist = guess.Artist, true
		}
	}

	if hasArtist {
		record.Artist = model.FolderInferred(artist, s.opts.FolderConfidence)
	}
	if hasAlbum {
		record.Album = model.FolderInferred(album, s.opts.FolderConfidence)
	}

	return record
}

func (s *Scanner) event(level Level, message string) {
	if s.onEvent != nil {
		s.onEvent(Event{Message: message, Level: level})
	}
}
