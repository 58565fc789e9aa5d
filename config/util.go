package config

import (
	"strings"
)

// joinURL appends the given segments to base, separated by exactly one slash. Leading slashes are removed
// from all segments, trailing slashes from all but the last one, and empty segments are skipped. An empty base
// is not prefixed with a slash, so the result is relative. Nothing is URL-encoded.
func joinURL(base string, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for i, segment := range segments {
		segment = strings.TrimLeft(segment, "/")
		if i < len(segments)-1 {
			segment = strings.TrimRight(segment, "/")
		}
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	if len(parts) == 0 {
		return base
	}
	joined := strings.Join(parts, "/")
	if base == "" || strings.HasSuffix(base, "/") {
		return base + joined
	}
	return base + "/" + joined
}

func trimSlashes(s string) string {
	return strings.Trim(s, "/")
}
