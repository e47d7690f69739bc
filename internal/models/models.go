package models

// StreamVariant describes one progressive (audio+video) rendition of a
// video. Size and FPS are pointers because the provider does not always
// report them.
type StreamVariant struct {
	Itag       int    `json:"itag"`
	Resolution string `json:"resolution"`
	FileSize   *int64 `json:"filesize"`
	FPS        *int   `json:"fps,omitempty"`
	MimeType   string `json:"-"`
}

// VideoMetadata is the full info payload for a resolved video. Field names
// follow the public API contract. Rating is always null: the platform no
// longer exposes it, but clients still expect the key.
type VideoMetadata struct {
	ID                   string          `json:"-"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Views                int             `json:"views"`
	Rating               *float64        `json:"rating"`
	Length               int             `json:"length"`
	Author               string          `json:"author"`
	PublishDate          string          `json:"publish_date"`
	ThumbnailURL         string          `json:"thumbnail_url"`
	AvailableResolutions []StreamVariant `json:"available_resolutions"`
	HighestResolution    *StreamVariant  `json:"highest_resolution"`
}

// SearchResultItem is the compact projection of one search hit, in the
// provider's relevance order.
type SearchResultItem struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail"`
	Duration     int    `json:"duration"`
	Views        uint64 `json:"views"`
	Author       string `json:"author"`
}

type StatsResponse struct {
	Uptime string `json:"uptime"`
}

type DiscoveryResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
