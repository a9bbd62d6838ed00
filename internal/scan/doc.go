// Package scan implements the CUE-aware directory scanner that feeds
// the metadata pipeline.
//
// A scan makes two passes over the tree. The first walks directories
// only, finds at most one CUE sheet per directory and — when it parses
// — emits one cue-inferred record per track entry, marking the
// directory consumed. The second walks files only, skips consumed
// directories and emits one folder/filename-inferred record per
// remaining supported audio file. The combined output is stable-sorted
// by filename so repeated scans of an unchanged tree are byte-for-byte
// reproducible.
//
// Scanning is fully synchronous with blocking I/O. Per-file failures
// (unreadable, empty, races with deletion) are reported as events and
// skipped; only a missing base path fails the batch.
package scan
