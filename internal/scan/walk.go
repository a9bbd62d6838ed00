package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// walkDirs visits dir and every subdirectory, depth-first, honoring
// the depth limit, the symlink policy and the exclude patterns.
// Directory entries come back from os.ReadDir sorted by filename, so
// the traversal order is deterministic.
func (s *Scanner) walkDirs(dir string, depth int, visit func(string)) {
	visit(dir)

	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.event(LevelWarning, fmt.Sprintf("cannot list %s: %v", dir, err))
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if s.excluded(entry.Name()) {
			continue
		}
		if s.isDir(entry, path) {
			s.walkDirs(path, depth+1, visit)
		}
	}
}

// walkFiles visits every file under dir, under the same policy as
// walkDirs.
func (s *Scanner) walkFiles(dir string, depth int, visit func(string)) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Already reported by the directory pass.
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if s.excluded(entry.Name()) {
			continue
		}

		if s.isDir(entry, path) {
			if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
				continue
			}
			s.walkFiles(path, depth+1, visit)
			continue
		}

		if s.isFile(entry, path) {
			visit(path)
		}
	}
}

// isDir reports whether entry is a directory, resolving symlinks when
// the policy allows following them.
func (s *Scanner) isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 || !s.opts.FollowSymlinks {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isFile reports whether entry is a regular file, resolving symlinks
// when the policy allows following them.
func (s *Scanner) isFile(entry fs.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 || !s.opts.FollowSymlinks {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// excluded matches a base name against the exclude patterns.
func (s *Scanner) excluded(name string) bool {
	for _, pattern := range s.opts.Excludes {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
