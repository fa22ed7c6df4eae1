package storage

import (
	"strings"
)

// Storage persists uploaded binaries. Save returns the stored reference kept
// on the owning record: a media-relative path for local storage, a full URL
// for S3. Delete takes the same reference back.
type Storage interface {
	Save(data []byte, dir, filename string) (string, error)
	Delete(ref string) error
}

var active Storage

// Use selects the storage backend for the process.
func Use(s Storage) {
	active = s
}

// Active returns the configured storage backend.
func Active() Storage {
	return active
}

// ResolveURL turns a stored reference into an absolute retrieval URL. S3
// references are already absolute; local references are served under the
// request's base URL.
func ResolveURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}
