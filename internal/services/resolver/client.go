package resolver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/ytgate/ytgate/internal/config"
	"github.com/ytgate/ytgate/internal/models"
)

// Client adapts kkdai/youtube to the Provider capability. One attempt per
// call, no retries: the library handles its own transient-failure logic and
// upstream failures surface verbatim.
type Client struct {
	client  *youtube.Client
	timeout time.Duration
}

// NewClient creates a new resolution provider client. The shared HTTP
// client carries no global timeout because it also serves long-running
// stream relays; metadata calls are bounded per call instead.
func NewClient(cfg *config.ProviderConfig) *Client {
	return &Client{
		client: &youtube.Client{
			HTTPClient: &http.Client{},
		},
		timeout: cfg.RequestTimeout,
	}
}

// GetVideo retrieves video metadata and enumerates progressive renditions.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return buildMetadata(video), nil
}

// OpenStream opens the byte stream for one itag. The metadata lookup is
// bounded by the provider timeout; the stream itself lives on the caller's
// context so a client disconnect aborts the transfer.
func (c *Client) OpenStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error) {
	metaCtx, cancel := context.WithTimeout(ctx, c.timeout)
	video, err := c.client.GetVideoContext(metaCtx, videoID)
	cancel()
	if err != nil {
		return nil, 0, err
	}

	var format *youtube.Format
	for i := range video.Formats {
		if video.Formats[i].ItagNo == itag {
			format = &video.Formats[i]
			break
		}
	}
	if format == nil {
		return nil, 0, ErrNoMatchingStream
	}

	stream, size, err := c.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, 0, err
	}
	if size <= 0 && format.ContentLength > 0 {
		size = format.ContentLength
	}
	return stream, size, nil
}

func buildMetadata(video *youtube.Video) *models.VideoMetadata {
	meta := &models.VideoMetadata{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		Views:        video.Views,
		Length:       int(video.Duration.Seconds()),
		Author:       video.Author,
		ThumbnailURL: bestThumbnailURL(video.Thumbnails),
	}
	if !video.PublishDate.IsZero() {
		meta.PublishDate = video.PublishDate.Format(time.RFC3339)
	}

	var highest *youtube.Format
	for i := range video.Formats {
		format := &video.Formats[i]
		if !isProgressive(format) {
			continue
		}
		meta.AvailableResolutions = append(meta.AvailableResolutions, toVariant(format))
		if highest == nil || betterFormat(format, highest) {
			highest = format
		}
	}
	if highest != nil {
		variant := toVariant(highest)
		meta.HighestResolution = &variant
	}

	return meta
}

// isProgressive reports whether a format carries both audio and video in
// one file, the only kind this gateway serves.
func isProgressive(format *youtube.Format) bool {
	return format.AudioChannels > 0 && format.Width > 0 && format.Height > 0
}

// betterFormat orders renditions by height, then bitrate, then size. This
// designates the highest-capability pick the same way a client iterating
// the variants would find it.
func betterFormat(a, b *youtube.Format) bool {
	if a.Height != b.Height {
		return a.Height > b.Height
	}
	if a.Bitrate != b.Bitrate {
		return a.Bitrate > b.Bitrate
	}
	return a.ContentLength > b.ContentLength
}

func toVariant(format *youtube.Format) models.StreamVariant {
	variant := models.StreamVariant{
		Itag:       format.ItagNo,
		Resolution: format.QualityLabel,
		MimeType:   format.MimeType,
	}
	if variant.Resolution == "" {
		variant.Resolution = format.Quality
	}
	if format.ContentLength > 0 {
		size := format.ContentLength
		variant.FileSize = &size
	}
	if format.FPS > 0 {
		fps := format.FPS
		variant.FPS = &fps
	}
	return variant
}

func bestThumbnailURL(thumbnails youtube.Thumbnails) string {
	bestURL := ""
	var bestArea uint
	for _, thumb := range thumbnails {
		area := thumb.Width * thumb.Height
		if area >= bestArea {
			bestArea = area
			bestURL = thumb.URL
		}
	}
	return bestURL
}
