package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// MongoDB configuration
	MongoURI     string
	DatabaseName string

	// Server configuration
	Port         string
	AllowOrigins string

	// Bootstrap admin account for the dashboard
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	cfg := &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:  getEnv("MONGO_DB_NAME", "speaker_bot"),
		Port:          getEnv("PORT", "8080"),
		AllowOrigins:  getEnv("ALLOW_ORIGINS", "http://localhost:5173, http://localhost:3000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate required configuration
	if cfg.MongoURI == "" {
		slog.Error("MONGO_URI not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
