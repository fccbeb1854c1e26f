// Package iodb implements database operations for PostgreSQL (pgxpool)
// and SQLite (modernc.org/sqlite), both wrapped by GORM.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"slices"

	"github.com/backwell/horario/pkg/db"
	"github.com/backwell/horario/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New creates an operator for the given driver (without connecting).
func New(driver string) (db.Operator, error) {
	switch driver {
	case "postgres":
		return NewPgxOperator(), nil
	case "sqlite":
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
}

// dropOrder puts known tables in an order that respects foreign keys,
// followed by any other tables.
func dropOrder(tables []string) []string {
	var res []string
	for _, t := range schema.TableNames() {
		if slices.Contains(tables, t) {
			res = append(res, t)
		}
	}
	for _, t := range tables {
		if !slices.Contains(res, t) {
			res = append(res, t)
		}
	}
	return res
}
