// Package config loads and validates environment variables at startup.
// Fail-fast: the Gemini API key has no fallback, the process refuses to
// start without it.
package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	DatabaseURL  string // optional; enables the search-history store when set
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:         port,
		GeminiAPIKey: apiKey,
		GeminiModel:  model,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}, nil
}
