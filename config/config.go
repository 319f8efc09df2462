package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	CORSAllowedOrigins []string

	EmailProvider    string // "ses" or "noop"
	EmailFromAddress string
	EmailFromName    string

	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// We don't return an error here because in production .env might not exist
	// and we rely on system environment variables.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:           env,
		Port:                  os.Getenv("PORT"),
		CORSAllowedOrigins:    splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
		EmailProvider:         os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:      os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:         os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:             os.Getenv("AWS_REGION"),
		AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SESInsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.EmailFromAddress == "" {
		cfg.EmailFromAddress = "activities@mergington.edu"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "Mergington High School"
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
