package storage

import "context"

// Client is the storage abstraction report artifacts are written
// through. Paths are slash-separated and relative to the backend root
// (a local base directory or a GCS bucket).
type Client interface {
	// Close releases backend resources.
	Close() error

	// StoreFile writes data at the given path, creating any missing
	// parent directories.
	StoreFile(ctx context.Context, filePath string, data []byte) error

	// GetFile reads the file at the given path.
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// FileExists reports whether a file exists at the given path.
	FileExists(ctx context.Context, filePath string) (bool, error)

	// ListReports returns up to limit report folder paths, newest
	// first.
	ListReports(ctx context.Context, limit int) ([]string, error)
}
