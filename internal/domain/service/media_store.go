package service

import (
	"context"
	"io"
)

// MediaStore holds uploaded media files and serves them by URL.
type MediaStore interface {
	// Save writes the file under a generated key and returns the public URL
	// a listing can reference.
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
	// Delete removes a previously saved file by its key.
	Delete(ctx context.Context, key string) error
}
