package config

import (
	"os"

	"todo_api/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	Version     string
}

// Load reads configuration from the environment (and .env when present).
func Load() *Config {
	_ = godotenv.Load()

	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT") == "json")

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	return &Config{
		AppPort:     port,
		DatabaseURL: dbURL,
		Version:     version,
	}
}
