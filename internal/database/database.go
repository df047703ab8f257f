package database

import (
	"log"
	"time"

	"github.com/Saijayaranjan/among-the-space/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the passport store. With DATABASE_URL set we connect to
// PostgreSQL with a pooled connection; without it we fall back to a local
// SQLite file, which is the single-user "everything stays on this machine"
// deployment.
func Connect() {
	dsn := config.AppConfig.DatabaseURL

	if dsn == "" {
		path := config.AppConfig.SQLitePath
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to open local database %s: %v", path, err)
		}
		DB = db
		log.Printf("Connected to local SQLite store at %s", path)
		return
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	log.Println("Connected to PostgreSQL with connection pooling (max: 25, idle: 10)")
}
