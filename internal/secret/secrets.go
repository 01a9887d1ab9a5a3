package secret

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process-wide credentials, loaded once at startup
// and injected where needed. Nothing else reads the environment.
type Config struct {
	GeniusAccessToken string
}

// Configured reports whether the Genius credential is present.
func (c Config) Configured() bool {
	return c.GeniusAccessToken != ""
}

// LoadSecrets always loads from:
// 1. A .env file in the working directory, if one exists (local dev)
// 2. Environment variables (deploy safe)
//
// A missing GENIUS_ACCESS_TOKEN is not an error: the service still
// starts, and Genius calls fail at request time instead.
func LoadSecrets() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, falling back to system env")
	}

	return Config{
		GeniusAccessToken: os.Getenv("GENIUS_ACCESS_TOKEN"),
	}, nil
}
