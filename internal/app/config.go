package app

import (
	"os"
	"strconv"
	"time"
)

// devSecretKey is an intentionally unsafe fallback for local development; a
// real deployment must set SECRET_KEY.
const devSecretKey = "dev-only-insecure-secret"

type Config struct {
	SecretKey           string        // Required in prod: HMAC secret for access tokens
	TokenAlgorithm      string        // Optional: HS256, HS384 or HS512 (default: HS256)
	TokenIssuer         string        // Optional: iss claim for access tokens
	AccessTokenExpiry   time.Duration // Optional: access token lifetime (default: 30m)
	ResetTokenExpiry    time.Duration // Optional: password reset token lifetime (default: 24h)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./showcasify.db)
	FrontendBaseURL     string        // Optional: base URL for password reset links
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SecretKey:      getEnvOrDefault("SECRET_KEY", devSecretKey),
		TokenAlgorithm: getEnvOrDefault("TOKEN_ALGORITHM", "HS256"),
		TokenIssuer:    getEnvOrDefault("TOKEN_ISSUER", "showcasify"),
		AccessTokenExpiry: getEnvDurationOrDefault(
			"ACCESS_TOKEN_EXPIRE_MINUTES",
			30*time.Minute,
		),
		ResetTokenExpiry:    getEnvDurationOrDefault("RESET_TOKEN_EXPIRE_HOURS", 24*time.Hour),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "showcasify.db"),
		FrontendBaseURL:     getEnvOrDefault("FRONTEND_BASE_URL", "http://localhost:3000"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Duration syntax ("30m", "24h") is preferred; a bare integer is read as
	// minutes for compatibility with older deploy scripts.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
