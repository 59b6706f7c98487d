package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/voice-expense/internal/logging"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, if one exists. Variables already set are not overridden.
func LoadEnv() {
	once.Do(func() {
		loadEnvFile(".env", filepath.Join("..", ".env"))
	})
}

func loadEnvFile(candidates ...string) string {
	log := logging.GetLogger()
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).Warn("Error loading .env file",
				logging.Field{Key: logging.FieldInputFile, Value: envFile})
			return ""
		}
		log.Debug("Loaded environment variables", logging.Field{Key: logging.FieldInputFile, Value: envFile})
		return envFile
	}
	log.Debug("No .env file found, using environment variables")
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
