package model

// Resolve picks one winning value for a logical field across tracks.
//
// The field accessor returns the provenance value a track carries for
// the field, or nil when the track does not supply it. Tracks are
// scanned in order and a running best is kept; a candidate replaces the
// best unless:
//
//   - the best is embedded and the candidate is not, or
//   - both are equally embedded and the best's confidence is greater
//     than or equal to the candidate's.
//
// Net effect: embedded sources always win regardless of confidence,
// the highest confidence wins among equals, and exact ties keep the
// earliest value in track order.
//
// Returns the zero value and false when no track supplies the field.
// Callers that want a fallback pool (e.g. album artist, then artist)
// call Resolve once per pool; the pools are never merged:
//
//	performer, ok := model.Resolve(tracks, func(t *model.Track) *model.Provenance[string] {
//		return t.Meta.AlbumArtist
//	})
//	if !ok {
//		performer, ok = model.Resolve(tracks, func(t *model.Track) *model.Provenance[string] {
//			return t.Meta.Artist
//		})
//	}
func Resolve[T any](tracks []*Track, field func(*Track) *Provenance[T]) (T, bool) {
	var (
		best         T
		found        bool
		bestEmbedded bool
		bestConf     float64
	)

	for _, track := range tracks {
		if track == nil || track.Meta == nil {
			continue
		}
		candidate := field(track)
		if candidate == nil {
			continue
		}

		embedded := candidate.Source == SourceEmbedded
		if found {
			if bestEmbedded && !embedded {
				continue
			}
			if bestEmbedded == embedded && bestConf >= candidate.Confidence {
				continue
			}
		}

		best = candidate.Value
		bestEmbedded = embedded
		bestConf = candidate.Confidence
		found = true
	}

	return best, found
}
