package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Profile  ProfileConfig
	Sweep    SweepConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProfileConfig selects which profile snapshot the server operates on
// and how it is stored.
type ProfileConfig struct {
	ID string
	// EncryptionKey is an optional base64 Fernet key. When set, snapshot
	// blobs are encrypted at rest.
	EncryptionKey string
	// LookaheadMonths bounds how far ahead open-ended obligations are
	// materialized.
	LookaheadMonths int
}

// SweepConfig holds the schedule of the overdue sweep job.
type SweepConfig struct {
	// CronSpec is a robfig/cron expression. The default runs shortly
	// after midnight so installments due yesterday flip to overdue.
	CronSpec string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finance_ledger.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Profile: ProfileConfig{
			ID:              getEnv("PROFILE_ID", "default"),
			EncryptionKey:   getEnv("SNAPSHOT_ENCRYPTION_KEY", ""),
			LookaheadMonths: getEnvInt("LOOKAHEAD_MONTHS", 12),
		},
		Sweep: SweepConfig{
			CronSpec: getEnv("SWEEP_CRON", "5 0 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
