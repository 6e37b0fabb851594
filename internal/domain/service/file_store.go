package service

import (
	"context"
	"io"
)

// FileStore defines the interface for blob storage of uploaded files.
// Keys are opaque to callers; the implementation decides the layout.
type FileStore interface {
	// Save writes the content under the given key and returns the public URL.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Delete removes the blob stored under the key. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error
}
