// Package library assembles scanner output into albums and offers the
// maintenance operations built on top of them: duplicate detection and
// CUE sheet write-back.
package library

import (
	"path/filepath"
	"sort"

	"tracknest/internal/model"
)

// GroupAlbums groups metadata records into album nodes by directory.
//
// The album title is resolved across the group's records (so an
// embedded album tag beats a folder guess) and falls back to the
// directory name; the year resolves the same way. Albums come back
// sorted by path and each album keeps its records in scanner order.
func GroupAlbums(records []*model.Metadata) []*model.AlbumNode {
	byDir := make(map[string][]*model.Track)
	for _, record := range records {
		dir := filepath.Dir(record.Path)
		byDir[dir] = append(byDir[dir], &model.Track{Path: record.Path, Meta: record})
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	albums := make([]*model.AlbumNode, 0, len(dirs))
	for _, dir := range dirs {
		tracks := byDir[dir]

		title, ok := model.Resolve(tracks, func(t *model.Track) *model.Provenance[string] {
			return t.Meta.Album
		})
		if !ok {
			title = filepath.Base(dir)
		}

		album := model.NewAlbumNode(title, dir)
		if year, ok := model.Resolve(tracks, func(t *model.Track) *model.Provenance[uint] {
			return t.Meta.Year
		}); ok {
			album.Year = year
		}

		for _, track := range tracks {
			album.AddTrack(track)
		}
		albums = append(albums, album)
	}

	return albums
}
