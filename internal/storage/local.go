package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LocalClient stores report artifacts on the local file system.
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local storage client rooted at baseDir,
// creating the directory if necessary.
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage.
func (l *LocalClient) Close() error { return nil }

// BaseDir returns the root directory reports are written under.
func (l *LocalClient) BaseDir() string { return l.baseDir }

// StoreFile writes data at the given relative path.
func (l *LocalClient) StoreFile(ctx context.Context, filePath string, data []byte) error {
	fullPath := filepath.Join(l.baseDir, filepath.FromSlash(filePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}

// GetFile reads the file at the given relative path.
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filepath.FromSlash(filePath)))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists reports whether a file exists at the given relative path.
func (l *LocalClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.baseDir, filepath.FromSlash(filePath)))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ListReports walks the base directory for report folders and returns
// up to limit relative paths, newest first. Folder names embed their
// timestamp, so lexical order is chronological.
func (l *LocalClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	var reports []string
	err := filepath.WalkDir(l.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && IsReportFolder(d.Name()) {
			rel, relErr := filepath.Rel(l.baseDir, path)
			if relErr != nil {
				return relErr
			}
			reports = append(reports, filepath.ToSlash(rel))
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(reports)))
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
