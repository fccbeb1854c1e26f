package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and migrations.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM AutoMigrate.
	// If tables already exist, the caller decides whether to drop them
	// first via db.Operator.DropAllTables.
	Create(ctx context.Context) error

	// Migrate updates the database schema to the latest version using GORM AutoMigrate.
	// GORM handles schema version tracking automatically.
	Migrate(ctx context.Context) error
}
