package iodb

import (
	"fmt"
	"runtime"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when PostgreSQL cannot be reached.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>
  2. Verify the database <em>%s</em> exists and user <em>%s</em> can access it
  3. Check ~/.config/horario/config.yaml or HORARIO_DATABASE_* variables
  4. Use <em>--driver sqlite</em> to work with a local file instead of <em>%s</em>`
	vars := []any{host, port, database, user, database}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			fn.Name(), host, port, database, err),
	}
}

// SQLiteOpenError is returned when the SQLite file cannot be opened.
func SQLiteOpenError(path string, err error) error {
	msg := "Cannot open SQLite database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot open %s: %w",
			fn.Name(), path, err),
	}
}

// UnknownDriverError is returned for an unsupported database driver.
func UnknownDriverError(driver string) error {
	msg := "Database driver <em>%s</em> is not supported, use postgres or sqlite"
	vars := []any{driver}
	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown database driver %q", driver),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	msg := "Cannot verify database state"
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without a connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError is returned when a table lookup fails.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// QueryTablesError is returned when table names cannot be listed.
func QueryTablesError(err error) error {
	msg := "Cannot list database tables"
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError is returned when a table name cannot be read.
func ScanTableError(err error) error {
	msg := "Cannot read database table names"
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
