package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	JwksUrl        string
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:8080"
	}
	allowedOrigins := make([]string, 0)
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	// Auth is optional; the API runs open when no JWKS endpoint is set.
	jwksUrl := os.Getenv("JWKS_URL")

	return &ServerConfig{
		Port:           port,
		AllowedOrigins: allowedOrigins,
		JwksUrl:        jwksUrl,
	}, nil
}
