package resolver

import (
	"context"
	"io"

	"github.com/ytgate/ytgate/internal/models"
)

// Provider is the capability boundary around the resolution provider, so
// handlers can be exercised against a fake without network access.
type Provider interface {
	// GetVideo resolves a canonical video ID into metadata plus the set of
	// progressive stream variants, with the highest-capability one
	// designated.
	GetVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error)

	// OpenStream opens the encoded byte stream for the given itag. The
	// returned size is 0 when the provider does not know it. The stream is
	// tied to ctx: cancelling ctx stops the underlying transfer.
	OpenStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error)
}
