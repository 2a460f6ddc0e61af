package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"econograph/internal/charts"
	"econograph/internal/llm"
	"econograph/internal/logger"
	"econograph/internal/models"
	"econograph/internal/storage"
	"econograph/internal/timeseries"
)

// defaultReportTitle is used when a render request names no title.
const defaultReportTitle = "Economic Data Overview"

// ReportGenerator turns fetched datasets into a stored report: applied
// gap policy, aligned table, rendered charts, commentary and the final
// HTML document.
type ReportGenerator struct {
	storage storage.Client
	llm     *llm.OpenAIClient
	builder *HTMLBuilder
	log     *logger.Logger
}

// NewReportGenerator creates a report generator. llmClient may be nil;
// commentary then falls back to the deterministic summary.
func NewReportGenerator(store storage.Client, llmClient *llm.OpenAIClient) (*ReportGenerator, error) {
	builder, err := NewHTMLBuilder()
	if err != nil {
		return nil, err
	}
	return &ReportGenerator{
		storage: store,
		llm:     llmClient,
		builder: builder,
		log:     logger.Component("reports"),
	}, nil
}

// GeneratedReport contains all artifacts of one report.
type GeneratedReport struct {
	FolderPath  string
	HTMLContent string
	Files       map[string][]byte
	Datasets    int
	Rows        int
}

// Generate builds all report artifacts for the given datasets. The
// datasets arrive raw from the fetchers; gap policy and alignment are
// applied here.
func (g *ReportGenerator) Generate(ctx context.Context, req models.RenderRequest, datasets []timeseries.Dataset, releases []models.ReleaseItem) (*GeneratedReport, error) {
	if len(datasets) == 0 {
		return nil, fmt.Errorf("no datasets to render")
	}

	policy := timeseries.ParseGapPolicy(req.GapPolicy)
	prepared := make([]timeseries.Dataset, len(datasets))
	for i, ds := range datasets {
		ds.Data = timeseries.ApplyGapPolicy(ds.Data, policy)
		prepared[i] = ds
	}

	rows := timeseries.Align(prepared)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no observations to render after applying gap policy %q", policy)
	}

	title := req.Title
	if title == "" {
		title = defaultReportTitle
	}
	cfg := charts.ResolveGraphConfig(charts.ParseChartType(req.ChartType), req.Config)

	g.log.Infof("Generating report %q: %d datasets, %d rows", title, len(prepared), len(rows))

	tempDir, err := os.MkdirTemp("", "econograph-charts-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	chartGen := charts.NewChartGenerator(tempDir)

	pngPath, err := chartGen.RenderLinePNG(title, rows, prepared, cfg, "chart.png")
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	pngData, err := os.ReadFile(pngPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered chart: %w", err)
	}

	snippet, err := chartGen.BuildLineSnippet("chart-main", title, rows, prepared, cfg)
	if err != nil {
		// The PNG fallback still shows the data.
		g.log.Warnf("Failed to build interactive chart snippet: %v", err)
	}

	tableHTML := BuildDataTable(rows, prepared)
	releasesHTML := BuildReleaseList(releases)
	commentary := g.commentary(ctx, title, prepared)

	htmlContent, err := g.builder.BuildCompleteHTML(title, commentary,
		template.HTML(snippet.HTML), tableHTML, releasesHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to build report HTML: %w", err)
	}

	rowsJSON, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aligned data: %w", err)
	}

	return &GeneratedReport{
		FolderPath:  storage.GenerateReportFolderPath(time.Now().UTC()),
		HTMLContent: htmlContent,
		Files: map[string][]byte{
			"index.html":    []byte(htmlContent),
			"chart.png":     pngData,
			"commentary.md": []byte(commentary),
			"data.json":     rowsJSON,
		},
		Datasets: len(prepared),
		Rows:     len(rows),
	}, nil
}

// Publish stores all report files under the report's folder path.
func (g *ReportGenerator) Publish(ctx context.Context, report *GeneratedReport) error {
	for filename, data := range report.Files {
		path := report.FolderPath + "/" + filename
		if err := g.storage.StoreFile(ctx, path, data); err != nil {
			return fmt.Errorf("failed to store %s: %w", filename, err)
		}
	}
	g.log.Infof("Report published to %s", report.FolderPath)
	return nil
}

// commentary asks the LLM for a markdown commentary, falling back to
// the deterministic summary when no client is configured or the call
// fails.
func (g *ReportGenerator) commentary(ctx context.Context, title string, datasets []timeseries.Dataset) string {
	if g.llm != nil {
		commentary, err := g.llm.GenerateCommentary(ctx, title, datasets)
		if err == nil {
			return commentary
		}
		g.log.Warnf("LLM commentary failed, using fallback summary: %v", err)
	}
	return FallbackCommentary(title, datasets)
}
