package resolver

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotYouTubeURL is returned for any input that does not name a YouTube
// video in one of the supported URL shapes.
var ErrNotYouTubeURL = errors.New("not a recognized YouTube video URL")

// ParseVideoURL extracts the canonical video ID from a YouTube URL.
// Supported shapes: youtu.be/<id>, youtube.com/watch?v=<id>,
// youtube.com/embed/<id> and youtube.com/v/<id>. Host matching is
// case-insensitive and ignores www./m. prefixes and ports. The function is
// pure string parsing, never touches the network and never panics.
func ParseVideoURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrNotYouTubeURL
	}

	switch normalizeHostname(parsed) {
	case "youtu.be":
		if id := pathSegmentAfter(parsed.Path, ""); id != "" {
			return id, nil
		}
	case "youtube.com":
		switch {
		case parsed.Path == "/watch":
			if id := parsed.Query().Get("v"); id != "" {
				return id, nil
			}
		case strings.HasPrefix(parsed.Path, "/embed/"):
			if id := pathSegmentAfter(parsed.Path, "/embed"); id != "" {
				return id, nil
			}
		case strings.HasPrefix(parsed.Path, "/v/"):
			if id := pathSegmentAfter(parsed.Path, "/v"); id != "" {
				return id, nil
			}
		}
	}

	return "", ErrNotYouTubeURL
}

// WatchURL is the canonical watch page for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// normalizeHostname lowercases the host, strips the port and removes
// www. and m. prefixes.
func normalizeHostname(parsed *url.URL) string {
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return strings.TrimPrefix(host, "m.")
}

// pathSegmentAfter returns the first path segment following prefix.
func pathSegmentAfter(path, prefix string) string {
	rest := strings.TrimPrefix(strings.TrimPrefix(path, prefix), "/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
