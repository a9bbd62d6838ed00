package library

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"tracknest/internal/media"
	"tracknest/internal/model"
	"tracknest/internal/scan"
)

// ScanRoots scans several independent roots concurrently and returns
// the concatenated records in root order.
//
// Scans share no mutable state, so running them in parallel needs no
// coordination beyond serializing the event callback, which ScanRoots
// does itself. The first fatal scan error cancels the batch.
func ScanRoots(roots []string, opts scan.Options, prober media.Prober, onEvent func(scan.Event)) ([]*model.Metadata, error) {
	var mu sync.Mutex
	serialized := func(e scan.Event) {
		if onEvent == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		onEvent(e)
	}

	results := make([][]*model.Metadata, len(roots))
	var g errgroup.Group
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			records, err := scan.New(opts, prober, serialized).Scan(root)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*model.Metadata
	for _, records := range results {
		all = append(all, records...)
	}
	return all, nil
}
