package database

import (
	"os"
	"time"

	"go-card-ledger/internal/config"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Blob is one whole collection serialized as a single JSON value.
// The app is offline-first: every read pulls a full collection, every
// write replaces it. Row-level updates do not exist on purpose.
type Blob struct {
	Key   string         `gorm:"primaryKey;size:32"`
	Value datatypes.JSON `gorm:"not null"`
}

func (Blob) TableName() string { return "blobs" }

func Connect() {
	log := config.GetLogger()

	var err error

	// 1. Pick the backend.
	// Default is an embedded SQLite file next to the binary (this is an
	// offline, single-user app). Setting DB_DSN switches to MySQL for
	// anyone running it as a shared server instead.
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		// Wait for MySQL to be ready (docker-compose race)
		for i := 0; i < 5; i++ {
			DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err == nil {
				break
			}
			log.Warnf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
			time.Sleep(2 * time.Second)
		}
	} else {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "ledger.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Info("✅ Successfully connected to the database!")

	// 2. Auto-Migrate the single blobs table
	if err := DB.AutoMigrate(&Blob{}); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	log.Info("✅ Database Schema Synced!")
}
