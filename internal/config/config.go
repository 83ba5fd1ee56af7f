package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	InputDir    string
	OutputDir   string
	LogLevel    string
	LogFormat   string
	ExcelReport bool
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first;
// a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	excelReport := false
	if v := os.Getenv("EXCEL_REPORT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("invalid EXCEL_REPORT, want a boolean")
		}
		excelReport = b
	}

	cfg := &Config{
		InputDir:    envOrDefault("INPUT_DIR", "temperatures"),
		OutputDir:   envOrDefault("OUTPUT_DIR", "."),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
		ExcelReport: excelReport,
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("invalid LOG_FORMAT, want json or text")
	}

	return cfg, nil
}

// envOrDefault returns the environment value for key, or def when unset or empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
