package config

import (
	"log"
	"net/http"
	"os"
	"time"

	"abstract-review-web/api"
)

// Backend is the shared client for the conference API.
var Backend *api.Client

// InitBackend configures the backend API client from environment variables.
func InitBackend() {
	baseURL := os.Getenv("BACKEND_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	timeout := 30 * time.Second
	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		} else {
			log.Printf("Warning: invalid BACKEND_TIMEOUT %q, using %s", raw, timeout)
		}
	}

	Backend = api.NewClient(baseURL, &http.Client{Timeout: timeout})
	log.Printf("Backend API configured at %s", baseURL)
}
