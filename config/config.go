package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
// Built once at startup and passed by reference into the services.
type Config struct {
	GeminiAPIKey  string
	USDAAPIKey    string
	Port          string
	GeminiModel   string
	GeminiBaseURL string
	USDABaseURL   string
	LogLevel      string
}

// Load reads the environment (honoring a local .env file) and exits when a
// required credential is missing. The service cannot do anything useful
// without both API keys, so there is no point starting up.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		USDAAPIKey:    os.Getenv("USDA_API_KEY"),
		Port:          getEnvOrDefault("PORT", "8000"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GeminiBaseURL: getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		USDABaseURL:   getEnvOrDefault("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.GeminiAPIKey == "" {
		log.Fatalf("GEMINI_API_KEY not found in environment variables")
	}
	if cfg.USDAAPIKey == "" {
		log.Fatalf("USDA_API_KEY not found in environment variables")
	}

	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
