package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL   = "https://api.trello.com/1"
	DefaultOutputDir = "."
)

// Config carries everything the adapters need for one run.
type Config struct {
	BaseURL   string
	APIKey    string
	APIToken  string
	OutputDir string
	// HTTPTimeout bounds every network call. Zero disables the bound and
	// lets a hung call stall its job.
	HTTPTimeout time.Duration
	Debug       bool
}

// Load reads configuration from the environment, preceded by an optional
// .env file in the working directory. API key and token are optional: the
// upstream may accept ambient-session requests without them.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:   envOr("BOARDSNAP_BASE_URL", DefaultBaseURL),
		APIKey:    os.Getenv("BOARDSNAP_API_KEY"),
		APIToken:  os.Getenv("BOARDSNAP_API_TOKEN"),
		OutputDir: envOr("BOARDSNAP_OUTPUT_DIR", DefaultOutputDir),
	}
	if v := os.Getenv("BOARDSNAP_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil {
		cfg.Debug = dbg
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
