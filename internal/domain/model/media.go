package model

import (
	"fmt"
	"strings"
)

// MediaKind selects whether a photo or a video is searched for.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind converts user input into a MediaKind.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(s))) {
	case MediaPhoto:
		return MediaPhoto, nil
	case MediaVideo:
		return MediaVideo, nil
	}
	return "", fmt.Errorf("unknown media kind %q (want photo or video)", s)
}

// MediaReference points at a stock asset. An empty URL means the search had no hits.
type MediaReference struct {
	URL  string
	Kind MediaKind
}

// Found reports whether the search produced an asset.
func (m MediaReference) Found() bool {
	return m.URL != ""
}
