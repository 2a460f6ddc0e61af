package server

import (
	"context"
	"fmt"
	"net/http"

	"econograph/internal/config"
	"econograph/internal/fetchers"
	"econograph/internal/llm"
	"econograph/internal/logger"
	"econograph/internal/reports"
	"econograph/internal/storage"
)

// Server wires configuration, fetchers, report generation and storage
// behind the HTTP surface.
type Server struct {
	Config    *config.Config
	Fetcher   *fetchers.DataFetcher
	Generator *reports.ReportGenerator
	Storage   storage.Client
	log       *logger.Logger
}

// NewServer creates a new server instance. Storage is local unless a
// GCS bucket is configured for a production environment.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	mode := storage.DeploymentLocal
	if cfg.Environment == "production" && cfg.GCSBucket != "" {
		mode = storage.DeploymentGCS
	}

	store, err := storage.NewClient(ctx, mode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var llmClient *llm.OpenAIClient
	if cfg.OpenAIAPIKey != "" {
		llmClient = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	generator, err := reports.NewReportGenerator(store, llmClient)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize report generator: %w", err)
	}

	log := logger.Component("server")
	log.Infof("Storage mode: %s", mode)
	if llmClient == nil {
		log.Info("No OpenAI key configured; commentary uses the deterministic summary")
	}

	return &Server{
		Config:    cfg,
		Fetcher:   fetchers.NewDataFetcher(cfg),
		Generator: generator,
		Storage:   store,
		log:       log,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/render", s.HandleRender)
	mux.HandleFunc("/sources", s.HandleSources)
	mux.HandleFunc("/reports", s.HandleListReports)
	mux.HandleFunc("/reports/", s.HandleFileProxy)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	return s.Storage.Close()
}
