package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Referenced tables come before the tables referencing them.
func AllModels() []any {
	return []any{
		&Subject{},
		&Instructor{},
		&Room{},
		&Course{},
		&Slot{},
		&ImportRun{},
	}
}

// TableNames lists tables created by Migrate, referencing tables first,
// which is the order to drop them in.
func TableNames() []string {
	return []string{
		"slots", "courses", "rooms", "instructors", "subjects", "import_runs",
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
