package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	Origin      string
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Session     SessionConfig
	Booking     BookingConfig
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// SessionConfig holds cookie-session settings.
type SessionConfig struct {
	Secret       string
	CookieName   string
	TTLHours     int
	SecureCookie bool
}

// BookingConfig holds scheduling policy switches.
type BookingConfig struct {
	// AllowOverlap keeps double-booking permitted, matching how the
	// clinics actually operate (overlapping slots absorb walk-ins).
	AllowOverlap bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinica"),
	}
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}

	allowOverlap, err := strconv.ParseBool(getEnv("BOOKING_ALLOW_OVERLAP", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_ALLOW_OVERLAP: %w", err)
	}

	secureCookie, err := strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:5173"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database:    dbConfig,
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", "default_session_secret"),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "clinic_session"),
			TTLHours:     sessionTTL,
			SecureCookie: secureCookie,
		},
		Booking: BookingConfig{
			AllowOverlap: allowOverlap,
		},
	}, nil
}

// Helper function to get environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
