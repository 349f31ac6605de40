package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the database backing the postgres or sqlite store
// drivers. For sqlite an empty DATABASE_URL means DATA_DIR/storefront.db.
func ConnectDatabase(cfg *Config) error {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func dialectorFor(cfg *Config) (gorm.Dialector, error) {
	switch cfg.StoreDriver {
	case DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	case DriverSQLite:
		dsn := cfg.DatabaseURL
		if dsn == "" {
			if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
			dsn = filepath.Join(cfg.DataDir, "storefront.db")
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("store driver %q does not use a database", cfg.StoreDriver)
	}
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
