// Package storage is the persistence adapter: four string-keyed slots,
// each holding the serialized snapshot of one state slice, backed by a
// gorm-managed table. Slices are read whole on load and overwritten whole
// on every mutation; there is no partial write and no cross-slice
// transaction.
package storage

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// Config selects the database backend.
type Config struct {
	// Driver is "sqlite3" (default) or "postgres".
	Driver string `yaml:"driver"`
	// DSN is the file path for sqlite3 or the connection string for
	// postgres.
	DSN string `yaml:"dsn"`
}

// Open connects to the configured database and migrates the slot table.
func Open(cfg Config) (*gorm.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	dsn := cfg.DSN
	if dsn == "" && driver == "sqlite3" {
		dsn = "frigosmart.db"
	}

	db, err := gorm.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: connect to %s database: %w", driver, err)
	}

	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&slotRecord{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate slot table: %w", err)
	}
	return db, nil
}
