// Package storage archives raw posting text on S3-compatible object storage
// so an extracted record can be traced back to what was actually pasted.
package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for archive storage operations
type ObjectStorage interface {
	// Upload uploads an object to storage
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Download downloads an object from storage
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete deletes an object from storage
	Delete(ctx context.Context, key string) error

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)

	// EnsureBucket creates the bucket if it does not exist
	EnsureBucket(ctx context.Context) error
}
