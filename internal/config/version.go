package config

import (
	"os"
	"strings"
)

// GetVersion returns the service version: the APP_VERSION environment
// variable when set (CI/CD), else the VERSION file, else a fallback.
func GetVersion() string {
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return "0.1.0"
}
