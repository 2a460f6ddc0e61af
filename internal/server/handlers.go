package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"econograph/internal/models"
	"econograph/internal/storage"
)

// maxSeriesPerRequest caps one render batch.
const maxSeriesPerRequest = 12

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleRender fetches the requested series, renders a report and
// stores it. Failed series degrade to entries in the error list as
// long as at least one series survives.
func (s *Server) HandleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Series) == 0 {
		writeJSONError(w, http.StatusBadRequest, "at least one series is required")
		return
	}
	if len(req.Series) > maxSeriesPerRequest {
		writeJSONError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d series per request", maxSeriesPerRequest))
		return
	}
	for _, series := range req.Series {
		if series.SeriesID == "" {
			writeJSONError(w, http.StatusBadRequest, "every series needs a series_id")
			return
		}
	}

	ctx := r.Context()

	datasets, seriesErrors := s.Fetcher.FetchAll(ctx, req.Series)
	if len(datasets) == 0 {
		writeJSON(w, http.StatusBadGateway, models.RenderResult{Errors: seriesErrors})
		return
	}

	// The release calendar is a sidebar nicety; skip it on failure.
	releases, err := s.Fetcher.FetchReleases(ctx, 10)
	if err != nil {
		s.log.Warnf("Release calendar unavailable: %v", err)
	}

	report, err := s.Generator.Generate(ctx, req, datasets, releases)
	if err != nil {
		s.log.Errorf("Report generation failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "report generation failed: "+err.Error())
		return
	}
	if err := s.Generator.Publish(ctx, report); err != nil {
		s.log.Errorf("Report publish failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "report publish failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, models.RenderResult{
		ReportURL:  "/reports/" + report.FolderPath + "/index.html",
		FolderPath: report.FolderPath,
		Datasets:   report.Datasets,
		Rows:       report.Rows,
		Errors:     seriesErrors,
	})
}

// HandleSources lists the available data sources
func (s *Server) HandleSources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sources := []models.DataSourceInfo{
		{
			ID:             models.SourceFRED,
			Name:           "FRED",
			Description:    "Federal Reserve Economic Data series by series id (GDP, UNRATE, CPIAUCSL)",
			RequiresAPIKey: true,
		},
		{
			ID:             models.SourceWorldBank,
			Name:           "World Bank",
			Description:    "World Development Indicators by indicator code, optionally prefixed with a country code (DEU:NY.GDP.MKTP.CD)",
			RequiresAPIKey: false,
		},
		{
			ID:             models.SourceAlphaVantage,
			Name:           "Alpha Vantage",
			Description:    "Daily close prices by ticker symbol",
			RequiresAPIKey: true,
		},
		{
			ID:             models.SourceYahoo,
			Name:           "Yahoo Finance",
			Description:    "Daily close prices by ticker or index symbol (AAPL, ^GSPC)",
			RequiresAPIKey: false,
		},
		{
			ID:             models.SourceCensus,
			Name:           "U.S. Census Bureau",
			Description:    "Timeseries tables by dataset path and variable column",
			RequiresAPIKey: false,
		},
	}

	writeJSON(w, http.StatusOK, sources)
}

// HandleListReports lists recent reports
func (s *Server) HandleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := parseLimit(r, 10, 100)
	reports, err := s.Storage.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Errorf("Failed to list reports: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports":   reports,
		"count":     len(reports),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFileProxy serves stored report files
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/reports/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(fileData)
}

// HandleRoot redirects to the latest report, or serves a landing page
// when no report exists yet.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	reports, err := s.Storage.ListReports(r.Context(), 1)
	if err != nil || len(reports) == 0 {
		s.serveLandingPage(w)
		return
	}

	http.Redirect(w, r, "/reports/"+reports[0]+"/index.html", http.StatusFound)
}

// serveLandingPage shows a minimal page when no reports exist.
func (s *Server) serveLandingPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>econograph</title></head>
<body>
<h1>econograph</h1>
<p>No reports yet. POST a series list to <code>/render</code> to generate one.</p>
<p>See <code>/sources</code> for the available data sources.</p>
</body></html>`)
}
