// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/backwell/horario/internal/iodb"
	"github.com/backwell/horario/pkg/config"
	"github.com/backwell/horario/pkg/db"
	"github.com/backwell/horario/pkg/schema"
	"github.com/stretchr/testify/require"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests. Tests never touch the configured production database.
	TestDatabaseName = "horario_test"

	// PostgresEnv enables PostgreSQL integration tests when set to a
	// non-empty value.
	PostgresEnv = "HORARIO_TEST_PG"
)

// SQLiteConfig returns a configuration that points to a fresh SQLite file
// inside a temporary home directory.
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(home, "test.sqlite")),
		config.OptLogDestination("stderr"),
	})
	return cfg
}

// PostgresConfig returns a configuration for the PostgreSQL test
// database. The test is skipped in short mode or when PostgresEnv is not
// set. Connection settings come from HORARIO_DATABASE_* variables when
// present.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.PostgresConfig(t)
//	    // ... use cfg for database operations
//	}
func PostgresConfig(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping PostgreSQL integration test in short mode")
	}
	if os.Getenv(PostgresEnv) == "" {
		t.Skipf("Skipping PostgreSQL integration test, %s is not set",
			PostgresEnv)
	}

	cfg := config.New()
	opts := []config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptDatabaseDriver("postgres"),
	}
	if s := os.Getenv("HORARIO_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("HORARIO_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("HORARIO_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("HORARIO_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName
	return cfg
}

// OpenStore connects to the database of the config, drops whatever is
// there and migrates the schema. The connection is closed when the test
// finishes.
func OpenStore(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	ctx := context.Background()

	op, err := iodb.New(cfg.Database.Driver)
	require.NoError(t, err)
	require.NoError(t, op.Connect(ctx, cfg))
	t.Cleanup(func() { op.Close() })

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, schema.Migrate(op.GORM()))
	return op
}

// OpenSQLite is a shortcut for OpenStore over a temporary SQLite file.
func OpenSQLite(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()
	cfg := SQLiteConfig(t)
	return OpenStore(t, cfg), cfg
}
