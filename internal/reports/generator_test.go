package reports

import (
	"context"
	"strings"
	"testing"

	"econograph/internal/models"
	"econograph/internal/storage"
	"econograph/internal/timeseries"
)

func testDatasets(t *testing.T) []timeseries.Dataset {
	t.Helper()

	build := func(id, label, units, frequency string, values []*float64) timeseries.Dataset {
		ds := timeseries.Dataset{
			ID:    id,
			Label: label,
			Metadata: &timeseries.Metadata{
				Title:     label,
				Units:     units,
				Frequency: frequency,
				Source:    "FRED",
			},
		}
		dates := []string{"2023-01-01", "2023-02-01", "2023-03-01", "2023-04-01"}
		for i, d := range dates {
			key, err := timeseries.ParseDateKey(d)
			if err != nil {
				t.Fatalf("ParseDateKey(%s) failed: %v", d, err)
			}
			ds.Data = append(ds.Data, timeseries.DataPoint{Date: key, Value: values[i]})
		}
		return ds
	}

	return []timeseries.Dataset{
		build("UNRATE", "Unemployment Rate", "Percent", "Monthly",
			[]*float64{timeseries.Number(3.4), timeseries.Number(3.6), nil, timeseries.Number(3.5)}),
		build("CPIAUCSL", "Consumer Price Index", "Index 1982-1984=100", "Monthly",
			[]*float64{timeseries.Number(299.2), timeseries.Number(300.8), timeseries.Number(301.8), timeseries.Number(303.4)}),
	}
}

func newTestGenerator(t *testing.T) *ReportGenerator {
	t.Helper()
	store, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	gen, err := NewReportGenerator(store, nil)
	if err != nil {
		t.Fatalf("NewReportGenerator failed: %v", err)
	}
	return gen
}

func TestGenerate(t *testing.T) {
	gen := newTestGenerator(t)

	req := models.RenderRequest{
		Title:     "Labor Market Overview",
		GapPolicy: "interpolate",
	}
	releases := []models.ReleaseItem{
		{Title: "Employment Situation", Link: "https://example.com/r50", Published: "Mar 1, 2024"},
	}

	report, err := gen.Generate(context.Background(), req, testDatasets(t), releases)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if report.Datasets != 2 {
		t.Errorf("Expected 2 datasets, got %d", report.Datasets)
	}
	if report.Rows != 4 {
		t.Errorf("Expected 4 aligned rows, got %d", report.Rows)
	}
	if report.FolderPath == "" || !strings.Contains(report.FolderPath, "ChartReport-") {
		t.Errorf("Unexpected folder path %q", report.FolderPath)
	}

	for _, name := range []string{"index.html", "chart.png", "commentary.md", "data.json"} {
		if len(report.Files[name]) == 0 {
			t.Errorf("Expected non-empty %s in report files", name)
		}
	}

	html := report.HTMLContent
	if !strings.Contains(html, "Labor Market Overview") {
		t.Errorf("Expected title in report HTML")
	}
	if !strings.Contains(html, "Unemployment Rate") || !strings.Contains(html, "Consumer Price Index") {
		t.Errorf("Expected series labels in report HTML")
	}
	if !strings.Contains(html, "Employment Situation") {
		t.Errorf("Expected release calendar entry in report HTML")
	}

	// Interpolation fills the single interior gap, so the data table
	// carries no missing marker for UNRATE in March.
	if !strings.Contains(string(report.Files["data.json"]), "2023-03-01") {
		t.Errorf("Expected aligned dates in data.json")
	}
}

func TestGenerateNoDatasets(t *testing.T) {
	gen := newTestGenerator(t)

	_, err := gen.Generate(context.Background(), models.RenderRequest{}, nil, nil)
	if err == nil {
		t.Fatal("Expected an error for an empty dataset list")
	}
}

func TestGenerateDefaultTitle(t *testing.T) {
	gen := newTestGenerator(t)

	report, err := gen.Generate(context.Background(), models.RenderRequest{}, testDatasets(t), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(report.HTMLContent, defaultReportTitle) {
		t.Errorf("Expected default title in report HTML")
	}
}

func TestPublish(t *testing.T) {
	store, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalClient failed: %v", err)
	}
	gen, err := NewReportGenerator(store, nil)
	if err != nil {
		t.Fatalf("NewReportGenerator failed: %v", err)
	}

	report, err := gen.Generate(context.Background(), models.RenderRequest{}, testDatasets(t), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := gen.Publish(context.Background(), report); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	ctx := context.Background()
	for _, name := range []string{"index.html", "chart.png", "commentary.md", "data.json"} {
		exists, err := store.FileExists(ctx, report.FolderPath+"/"+name)
		if err != nil {
			t.Fatalf("FileExists failed: %v", err)
		}
		if !exists {
			t.Errorf("Expected %s to be stored under %s", name, report.FolderPath)
		}
	}

	reports, err := store.ListReports(ctx, 10)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Errorf("Expected 1 stored report, got %d", len(reports))
	}
}
