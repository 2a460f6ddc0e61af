package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8982" {
		t.Errorf("Expected default Port '8982', got '%s'", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4.1" {
		t.Errorf("Expected default OpenAIModel 'gpt-4.1', got '%s'", cfg.OpenAIModel)
	}
	if cfg.LocalReportsDir != "./reports" {
		t.Errorf("Expected default LocalReportsDir './reports', got '%s'", cfg.LocalReportsDir)
	}
	if cfg.Environment != "development" {
		t.Errorf("Expected default Environment 'development', got '%s'", cfg.Environment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.FREDBaseURL != "https://api.stlouisfed.org/fred" {
		t.Errorf("Unexpected default FRED base URL: %s", cfg.FREDBaseURL)
	}
	if cfg.WorldBankBaseURL != "https://api.worldbank.org/v2" {
		t.Errorf("Unexpected default World Bank base URL: %s", cfg.WorldBankBaseURL)
	}
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FRED_API_KEY", "test-fred-key")
	t.Setenv("ALPHAVANTAGE_API_KEY", "test-av-key")
	t.Setenv("GCS_BUCKET", "test-bucket")
	t.Setenv("LOCAL_REPORTS_DIR", "/custom/reports")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FRED_BASE_URL", "http://localhost:9999/fred")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port '9000', got '%s'", cfg.Port)
	}
	if cfg.FREDAPIKey != "test-fred-key" {
		t.Errorf("Expected FREDAPIKey 'test-fred-key', got '%s'", cfg.FREDAPIKey)
	}
	if cfg.AlphaVantageAPIKey != "test-av-key" {
		t.Errorf("Expected AlphaVantageAPIKey 'test-av-key', got '%s'", cfg.AlphaVantageAPIKey)
	}
	if cfg.GCSBucket != "test-bucket" {
		t.Errorf("Expected GCSBucket 'test-bucket', got '%s'", cfg.GCSBucket)
	}
	if cfg.LocalReportsDir != "/custom/reports" {
		t.Errorf("Expected LocalReportsDir '/custom/reports', got '%s'", cfg.LocalReportsDir)
	}
	if cfg.Environment != "production" {
		t.Errorf("Expected Environment 'production', got '%s'", cfg.Environment)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.FREDBaseURL != "http://localhost:9999/fred" {
		t.Errorf("Expected overridden FRED base URL, got '%s'", cfg.FREDBaseURL)
	}
}

func TestGetVersion(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	if v := GetVersion(); v != "1.2.3" {
		t.Errorf("Expected version '1.2.3' from environment, got '%s'", v)
	}
}
