package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath = errors.New("invalid storage path")
	ErrNotFound    = errors.New("file not found")
)

// FileStorage keeps generated files under slash-separated keys
type FileStorage interface {
	// Upload stores the content under key and returns the cleaned key
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	// Download opens a stored file
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, key string) error

	// GetURL returns where the file can be fetched from
	GetURL(ctx context.Context, key string) (string, error)

	// Exists checks if a file is stored under key
	Exists(ctx context.Context, key string) (bool, error)
}
