package filestorage

import (
	"context"
)

// ObjectStore persists raw objects under a key and reports where they are served from.
type ObjectStore interface {
	// Put stores data under key. A rejection by the store is reported as an upload error.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the URL the object stored under key is reachable at
	PublicURL(key string) string
}
