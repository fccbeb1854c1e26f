// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/backwell/horario/pkg/db"
	"github.com/backwell/horario/pkg/lifecycle"
	"github.com/backwell/horario/pkg/schema"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using
// GORM AutoMigrate. On PostgreSQL it also applies "C" collation to key
// columns, so that the database sorts them the same way the importer
// does.
func (m *manager) Create(ctx context.Context) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}
	gormDB = gormDB.WithContext(ctx)

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	if m.operator.Driver() == "postgres" {
		if err := m.setCollation(gormDB); err != nil {
			return err
		}
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB := m.operator.GORM()
	if gormDB == nil {
		return NotConnectedError()
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	return nil
}

// setCollation sets "C" collation on key columns of catalog tables.
func (m *manager) setCollation(gormDB *gorm.DB) error {
	for _, col := range collatedColumns {
		if err := gormDB.Exec(col.alterSQL()).Error; err != nil {
			return CollationError(col, err)
		}
	}
	return nil
}
