package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/cyclecalc/client"
)

var ErrAPIKeyMissing = errors.New("APIVERVE_API_KEY is required")

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Load reads the environment, filling it first from a .env file in the working
// directory when one exists. Variables already set win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFrom is Load with explicit env files; a missing file is an error.
func LoadFrom(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("APIVERVE_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrAPIKeyMissing
	}

	timeout := client.DefaultTimeout
	if raw := getEnv("APIVERVE_TIMEOUT", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid APIVERVE_TIMEOUT %q: %w", raw, err)
		}
		if parsed <= 0 {
			return Config{}, fmt.Errorf("invalid APIVERVE_TIMEOUT %q: must be positive", raw)
		}
		timeout = parsed
	}

	return Config{
		APIKey:  apiKey,
		BaseURL: getEnv("APIVERVE_BASE_URL", client.DefaultBaseURL),
		Timeout: timeout,
	}, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
