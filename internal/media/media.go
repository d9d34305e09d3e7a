// Package media resolves stored file references (e.g. "poster/alien.jpg")
// into URLs clients can fetch.
package media

import (
	"net/url"
	"strings"
)

type Store interface {
	URL(ref string) string
}

// PrefixStore serves files from a single base URL, which may be absolute
// ("https://cdn.example.com/media/") or a path ("/media/").
type PrefixStore struct {
	base string
}

func NewPrefixStore(baseURL string) *PrefixStore {
	if baseURL == "" {
		baseURL = "/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &PrefixStore{base: baseURL}
}

// URL joins ref onto the base, percent-encoding each path segment. An empty
// reference resolves to an empty string.
func (s *PrefixStore) URL(ref string) string {
	if ref == "" {
		return ""
	}

	segments := strings.Split(strings.TrimLeft(ref, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.base + strings.Join(segments, "/")
}
