package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSClient stores report artifacts in a Google Cloud Storage bucket.
type GCSClient struct {
	client *storage.Client
	bucket string
}

// NewGCSClient creates a GCS storage client for the given bucket.
func NewGCSClient(ctx context.Context, bucket string) (*GCSClient, error) {
	if bucket == "" {
		return nil, fmt.Errorf("GCS bucket name is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSClient{client: client, bucket: bucket}, nil
}

// Close closes the underlying GCS client.
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// StoreFile writes data at the given object path with a content type
// derived from its extension.
func (g *GCSClient) StoreFile(ctx context.Context, filePath string, data []byte) error {
	obj := g.client.Bucket(g.bucket).Object(filePath)
	w := obj.NewWriter(ctx)
	w.ContentType = GetContentType(filePath)

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", filePath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", filePath, err)
	}
	return nil
}

// GetFile reads the object at the given path.
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	r, err := g.client.Bucket(g.bucket).Object(filePath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", filePath, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", filePath, err)
	}
	return data, nil
}

// FileExists reports whether an object exists at the given path.
func (g *GCSClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := g.client.Bucket(g.bucket).Object(filePath).Attrs(ctx)
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat object %s: %w", filePath, err)
	}
	return true, nil
}

// ListReports scans the bucket for report index files and returns up
// to limit folder paths, newest first.
func (g *GCSClient) ListReports(ctx context.Context, limit int) ([]string, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})

	folders := make(map[string]struct{})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", g.bucket, err)
		}
		if !strings.HasSuffix(attrs.Name, "/index.html") {
			continue
		}
		folder := strings.TrimSuffix(attrs.Name, "/index.html")
		if IsReportFolder(folder[strings.LastIndex(folder, "/")+1:]) {
			folders[folder] = struct{}{}
		}
	}

	reports := make([]string, 0, len(folders))
	for folder := range folders {
		reports = append(reports, folder)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(reports)))
	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}
	return reports, nil
}
