package db

import (
	"context"

	"github.com/backwell/horario/pkg/config"
	"gorm.io/gorm"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes a *gorm.DB for
// high-level components (SchemaManager, Importer, store) to run their
// queries and transactions.
//
// Two implementations exist: PostgreSQL through a pgx pool and a SQLite
// file through the pure Go driver.
type Operator interface {
	// Connect opens the database.
	Connect(context.Context, *config.Config) error

	// Close closes the database connection.
	Close() error

	// Driver names the backend ("postgres" or "sqlite").
	Driver() string

	// GORM returns the GORM handle over the open connection, nil when not
	// connected.
	GORM() *gorm.DB

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all user tables.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
