package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&IDMapping{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the mapping
// schema. AutoMigrate is idempotent - safe to run before every
// generation pass.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
