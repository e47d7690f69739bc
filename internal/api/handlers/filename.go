package handlers

import "strings"

// sanitizeFilename makes a video title safe for a Content-Disposition
// filename: path separators, quotes and control characters become
// underscores. Falls back to the video ID when nothing printable is left.
func sanitizeFilename(title, fallback string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r < 0x20 || r == 0x7f:
			b.WriteByte('_')
		case r == '/' || r == '\\' || r == '"':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	name := strings.Trim(b.String(), " .")
	if name == "" {
		return fallback
	}
	return name
}
