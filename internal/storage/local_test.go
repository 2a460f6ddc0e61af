package storage

import (
	"context"
	"testing"
	"time"
)

func TestLocalClientStoreAndGet(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	path := "2025/08/24/ChartReport-2025-08-24-12-00-00/index.html"
	content := []byte("<html>report</html>")

	if err := client.StoreFile(ctx, path, content); err != nil {
		t.Fatalf("StoreFile failed: %v", err)
	}

	got, err := client.GetFile(ctx, path)
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("GetFile returned %q, expected %q", got, content)
	}

	exists, err := client.FileExists(ctx, path)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Errorf("Expected file to exist at %s", path)
	}

	exists, err = client.FileExists(ctx, "missing/file.html")
	if err != nil {
		t.Fatalf("FileExists failed for missing file: %v", err)
	}
	if exists {
		t.Errorf("Did not expect missing file to exist")
	}
}

func TestLocalClientGetMissingFile(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	if _, err := client.GetFile(context.Background(), "nope.html"); err == nil {
		t.Errorf("Expected an error reading a missing file")
	}
}

func TestLocalClientListReports(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	timestamps := []time.Time{
		time.Date(2025, 8, 22, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 23, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 24, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range timestamps {
		folder := GenerateReportFolderPath(ts)
		if err := client.StoreFile(ctx, folder+"/index.html", []byte("x")); err != nil {
			t.Fatalf("StoreFile failed: %v", err)
		}
	}

	reports, err := client.ListReports(ctx, 10)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("Expected 3 reports, got %d: %v", len(reports), reports)
	}

	// Newest first.
	if reports[0] != GenerateReportFolderPath(timestamps[2]) {
		t.Errorf("Expected newest report first, got %s", reports[0])
	}

	limited, err := client.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected limit of 2 reports, got %d", len(limited))
	}
}

func TestLocalClientListReportsEmpty(t *testing.T) {
	client, err := NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	defer client.Close()

	reports, err := client.ListReports(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("Expected no reports in empty directory, got %v", reports)
	}
}
