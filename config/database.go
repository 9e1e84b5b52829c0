package config

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MayerAttila/Gifty/storage"
)

// InitDB opens the configured database. The default is an embedded
// sqlite file, which matches the single-user shape of the app; set
// DB_TYPE=postgres with DATABASE_URL for a server deployment.
func InitDB() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch os.Getenv("DB_TYPE") {
	case "", "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "gifty.db"
		}
		db, err := gorm.Open(sqlite.Open(path), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
		}
		return db, nil

	case "postgres", "postgresql":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for DB_TYPE=postgres")
		}
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", os.Getenv("DB_TYPE"))
	}
}

// RunMigrations creates the storage-slot table.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&storage.StorageSlot{}); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	return nil
}
