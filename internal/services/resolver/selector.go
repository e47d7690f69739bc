package resolver

import (
	"errors"

	"github.com/ytgate/ytgate/internal/models"
)

// ErrNoMatchingStream is returned when selection cannot produce a stream:
// the requested itag is absent, or no progressive rendition exists at all.
var ErrNoMatchingStream = errors.New("no matching stream")

// SelectStream picks exactly one rendition. An explicit itag must match
// exactly; it never falls back to a different stream, because a caller who
// asked for a specific rendition must not silently receive another one.
// Without an itag the designated highest-capability rendition is used.
func SelectStream(meta *models.VideoMetadata, itag int) (*models.StreamVariant, error) {
	if itag > 0 {
		for i := range meta.AvailableResolutions {
			if meta.AvailableResolutions[i].Itag == itag {
				return &meta.AvailableResolutions[i], nil
			}
		}
		return nil, ErrNoMatchingStream
	}

	if meta.HighestResolution == nil {
		return nil, ErrNoMatchingStream
	}
	return meta.HighestResolution, nil
}
