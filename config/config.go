package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration
type Config struct {
	Port               string
	GoEnv              string
	LogLevel           string
	DataDir            string
	StoreDriver        string
	DatabaseURL        string
	SessionSecret      string
	SessionDir         string
	AdminUsername      string
	AdminPassword      string
	CORSAllowedOrigins []string
	AWSRegion          string
	AWSS3Bucket        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	SnapshotPrefix     string

	// EnvFile is the dotenv file the values were read from, empty when only
	// the process environment was used
	EnvFile string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try the environment-specific file first, then .env. Neither is
	// required: deployed environments set variables directly.
	loadedFrom := ""
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err == nil {
		loadedFrom = envFile
	} else if err := godotenv.Load(); err == nil {
		loadedFrom = ".env"
	}

	goEnv := getEnv("GO_ENV", "development")
	defaultSecret := "secret-key"
	if goEnv == "production" {
		defaultSecret = ""
	}

	config := &Config{
		Port:               getEnv("PORT", "3000"),
		GoEnv:              goEnv,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SessionSecret:      getEnv("SESSION_SECRET", defaultSecret),
		SessionDir:         getEnv("SESSION_DIR", ""),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "password"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:        getEnv("AWS_S3_BUCKET", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		SnapshotPrefix:     getEnv("SNAPSHOT_PREFIX", "snapshots"),
		EnvFile:            loadedFrom,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required when STORE_DRIVER=%s", DriverFile)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want file, postgres or sqlite)", c.StoreDriver)
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must not be empty")
	}
	for _, origin := range c.CORSAllowedOrigins {
		if !validOrigin(origin) {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be * or start with http:// or https://", origin)
		}
	}
	return nil
}

// Warnings lists settings that are accepted but unsafe outside local
// development and tests
func (c *Config) Warnings() []string {
	if c.IsDevelopment() || c.IsTest() {
		return nil
	}

	var warnings []string
	if c.AdminUsername == "admin" && c.AdminPassword == "password" {
		warnings = append(warnings, "ADMIN_USERNAME and ADMIN_PASSWORD are the built-in defaults")
	}
	if c.SessionSecret == "secret-key" {
		warnings = append(warnings, "SESSION_SECRET is the built-in default")
	}
	return warnings
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// MirrorEnabled reports whether data files should be copied to S3
func (c *Config) MirrorEnabled() bool {
	return c.AWSS3Bucket != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validOrigin(origin string) bool {
	return origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
