package migrations

import (
	"fmt"
	"time"

	"github.com/Saijayaranjan/among-the-space/pkg/logger"
	"gorm.io/gorm"
)

// Migration is a named, one-shot schema change applied after AutoMigrate.
type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

// MigrationRecord tracks which migrations have been applied.
type MigrationRecord struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"type:text"`
	AppliedAt time.Time `gorm:"autoUpdateTime:nano"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// Migrator applies pending migrations in order, each in its own
// transaction, and records them so re-runs are no-ops.
type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: All(),
	}
}

// Run executes every migration not yet recorded.
func (m *Migrator) Run() error {
	if err := m.db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var applied []MigrationRecord
	if err := m.db.Find(&applied).Error; err != nil {
		return fmt.Errorf("failed to fetch applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool, len(applied))
	for _, r := range applied {
		appliedMap[r.ID] = true
	}

	for _, migration := range m.migrations {
		if appliedMap[migration.ID] {
			continue
		}

		logger.Info().Str("migration", migration.ID).Str("name", migration.Name).Msg("Running migration")

		if err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{
				ID:   migration.ID,
				Name: migration.Name,
			}).Error
		}); err != nil {
			logger.Error().Err(err).Str("migration", migration.ID).Msg("Migration failed")
			return fmt.Errorf("migration %s failed: %w", migration.ID, err)
		}

		logger.Info().Str("migration", migration.ID).Msg("Migration completed")
	}

	return nil
}

// All returns the registered migrations in order.
func All() []Migration {
	return []Migration{
		Migration001PassportSingleton(),
	}
}
