package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string

	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Store configuration
	StoreBackend string
	DataDir      string

	// Logger configuration
	LogLevel    string
	LogEncoding string
}

// LoadConfig creates a new Config instance from environment variables,
// reading a .env file first when one is present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getenv("APP_ENV", "development"),
		ServerHost:      getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:      getenv("SERVER_PORT", "8080"),
		ShutdownTimeout: 5 * time.Second,
		AllowedOrigins:  splitList(getenv("ALLOWED_ORIGINS", "http://localhost:5173")),
		StoreBackend:    getenv("STORE_BACKEND", BackendFile),
		DataDir:         getenv("DATA_DIR", "data"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogEncoding:     getenv("LOG_ENCODING", "json"),
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendBolt, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	return cfg, nil
}

// RecipeFilePath is the location of the flat-file collection.
func (c *Config) RecipeFilePath() string {
	return filepath.Join(c.DataDir, "recipes.json")
}

// BoltFilePath is the location of the bbolt collection.
func (c *Config) BoltFilePath() string {
	return filepath.Join(c.DataDir, "recipes.db")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
