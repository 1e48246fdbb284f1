package storage

import (
	"context"
	"io"
)

// FileStorage persists captured check-in photos. The engine treats photo
// content as opaque; nothing here decodes or inspects the image.
type FileStorage interface {
	// Upload writes a file and returns the stored path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for the stored file
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
