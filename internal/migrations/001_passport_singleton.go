package migrations

import (
	"gorm.io/gorm"
)

// Migration001PassportSingleton enforces the one-passport rule at the
// store level. The service already refuses a second create, but a unique
// index over a constant expression makes the single row a database
// invariant too, on both SQLite and Postgres.
func Migration001PassportSingleton() Migration {
	return Migration{
		ID:   "001_passport_singleton",
		Name: "Enforce single passport row",
		Up: func(db *gorm.DB) error {
			// The expression is true for every row, so a second insert
			// collides with the first. A bare constant would be rejected
			// by SQLite, hence the column reference.
			return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_passports_singleton ON passports ((id IS NOT NULL))`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP INDEX IF EXISTS idx_passports_singleton`).Error
		},
	}
}
