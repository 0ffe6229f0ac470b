package service

import (
	"context"
	"io"
)

// MediaStorage abstracts the image store behind the upload endpoint. The
// concrete implementation writes to a blob bucket (local disk in dev, GCS in
// production) and returns the public URL the catalog references.
type MediaStorage interface {
	// Upload stores the content under a generated key derived from filename
	// and returns the publicly reachable URL.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
