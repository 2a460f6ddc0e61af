package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the economic chart service.
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8982"`

	// Data source API keys. The FRED and Alpha Vantage keys are needed
	// only when a render batch actually uses those sources.
	FREDAPIKey         string `env:"FRED_API_KEY"`
	AlphaVantageAPIKey string `env:"ALPHAVANTAGE_API_KEY"`

	// OpenAI configuration (optional; report commentary falls back to
	// a deterministic summary when no key is set)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4.1"`

	// GCP configuration (optional for local deployments)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local deployment configuration
	LocalReportsDir string `env:"LOCAL_REPORTS_DIR,default=./reports"`

	// Data source base URLs (overridable for tests)
	FREDBaseURL         string `env:"FRED_BASE_URL,default=https://api.stlouisfed.org/fred"`
	WorldBankBaseURL    string `env:"WORLDBANK_BASE_URL,default=https://api.worldbank.org/v2"`
	AlphaVantageBaseURL string `env:"ALPHAVANTAGE_BASE_URL,default=https://www.alphavantage.co/query"`
	YahooBaseURL        string `env:"YAHOO_BASE_URL,default=https://query1.finance.yahoo.com/v8/finance/chart"`
	CensusBaseURL       string `env:"CENSUS_BASE_URL,default=https://api.census.gov/data"`
	FREDReleasesRSSURL  string `env:"FRED_RELEASES_RSS_URL,default=https://fred.stlouisfed.org/releases/calendar/rss"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
