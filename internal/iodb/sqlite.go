package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backwell/horario/pkg/config"
	"github.com/backwell/horario/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator for a local SQLite file.
type sqliteOperator struct {
	path  string
	sqlDB *sql.DB
	db    *gorm.DB
}

// NewSQLiteOperator creates a new SQLite operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens (and creates if needed) the SQLite database file with
// foreign keys enforced.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.Config,
) error {
	path := cfg.SQLitePath()
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return SQLiteOpenError(path, err)
		}
	}

	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteOpenError(path, err)
	}
	// SQLite has a single writer; an in-memory database lives in one
	// connection only.
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteOpenError(path, err)
	}

	gormDB, err := gorm.Open(
		sqlite.New(sqlite.Config{Conn: sqlDB}),
		gormConfig(),
	)
	if err != nil {
		sqlDB.Close()
		return SQLiteOpenError(path, err)
	}

	s.path = path
	s.sqlDB = sqlDB
	s.db = gormDB
	return nil
}

// Close closes the database file.
func (s *sqliteOperator) Close() error {
	if s.sqlDB != nil {
		return s.sqlDB.Close()
	}
	return nil
}

func (s *sqliteOperator) Driver() string {
	return "sqlite"
}

func (s *sqliteOperator) GORM() *gorm.DB {
	return s.db
}

// TableExists checks if a table exists in the database.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.sqlDB == nil {
		return false, NotConnectedError()
	}

	query := `SELECT count(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?`

	var n int
	err := s.sqlDB.QueryRowContext(ctx, query, tableName).Scan(&n)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return n > 0, nil
}

// HasTables checks if the database has any user tables.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.sqlDB == nil {
		return false, NotConnectedError()
	}

	tables, err := s.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops all user tables.
func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	if s.sqlDB == nil {
		return NotConnectedError()
	}

	tables, err := s.tables(ctx)
	if err != nil {
		return QueryTablesError(err)
	}

	for _, table := range dropOrder(tables) {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %q", table)
		if _, err := s.sqlDB.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

func (s *sqliteOperator) tables(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, ScanTableError(err)
		}
		res = append(res, name)
	}
	return res, rows.Err()
}
