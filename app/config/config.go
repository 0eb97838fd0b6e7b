package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. It is built once in main and passed
// down explicitly; nothing reads the environment after startup.
type Config struct {
	Addr         string
	DatabasePath string
	JWTSecret    string
}

// Load reads the configuration from the environment, loading a .env file
// first when one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:         ":8080",
		DatabasePath: "data/badger",
		JWTSecret:    "development-secret",
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	return cfg
}
