package ports

import (
	"context"
	"io"
)

// BlobStore abstracts the object store holding lecture videos.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
}
