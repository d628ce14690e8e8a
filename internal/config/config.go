package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port              string
	UprightAPIKey     string
	UprightAPIBase    string
	CheckboxStatePath string
	PublicDir         string
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present, just log it
		// log.Printf("Warning: .env file not found, reading from environment")
	}

	return &Config{
		Port:              getEnv("PORT", "3000"),
		UprightAPIKey:     getEnv("UPRIGHT_API_KEY", ""),
		UprightAPIBase:    getEnv("UPRIGHT_API_BASE", "https://app.uprightlabs.com/api/reports"),
		CheckboxStatePath: getEnv("CHECKBOX_STATE_PATH", "data.json"),
		PublicDir:         getEnv("PUBLIC_DIR", "./public"),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
