package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names for the Firebase service account
const (
	EnvFirebaseProjectID   = "FIREBASE_PROJECT_ID"
	EnvFirebaseClientEmail = "FIREBASE_CLIENT_EMAIL"
	EnvFirebasePrivateKey  = "FIREBASE_PRIVATE_KEY"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Logging     LoggingConfig
	Firebase    FirebaseConfig
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables and an optional .env file.
// Missing Firebase credentials are not a load error; see FirebaseConfig.Validate.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Firebase: FirebaseConfig{
			ProjectID:   strings.TrimSpace(v.GetString(EnvFirebaseProjectID)),
			ClientEmail: strings.TrimSpace(v.GetString(EnvFirebaseClientEmail)),
			PrivateKey:  NormalizePrivateKey(v.GetString(EnvFirebasePrivateKey)),
		},
	}

	return config, nil
}

// NormalizePrivateKey replaces literal "\n" escape sequences with real newlines.
// Hosting dashboards usually store PEM keys on a single line.
func NormalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
