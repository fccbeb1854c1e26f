package ioschema

import (
	"fmt"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when the schema is changed before the
// operator connects.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Cannot change the catalog schema without a database connection",
		Err:  fmt.Errorf("schema: not connected to database"),
	}
}

// CreateSchemaError is returned when catalog tables cannot be created.
func CreateSchemaError(err error) error {
	msg := `Cannot create catalog tables

<em>Possible causes:</em>
  - The database user lacks CREATE permission
  - The SQLite file or its directory is read-only
  - Tables of another application use the same names

<em>How to fix:</em>
  1. Grant CREATE on the database, or pick another SQLite path
  2. Run <em>horario create --force</em> to drop the old tables
  3. See <em>horario.log</em> for the failing statement`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("create catalog schema: %w", err),
	}
}

// MigrateSchemaError is returned when catalog tables cannot be updated to
// the current models.
func MigrateSchemaError(err error) error {
	msg := `Cannot update catalog tables

<em>Possible causes:</em>
  - Stored courses or slots violate a new constraint
  - The database user lacks ALTER permission

<em>How to fix:</em>
  1. Export what you need with <em>horario timetable -f csv</em>
  2. Recreate tables with <em>horario create --force</em>
  3. Import the catalog again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("migrate catalog schema: %w", err),
	}
}

// CollationError is returned when a key column cannot switch to "C"
// collation.
func CollationError(col columnDef, err error) error {
	msg := `Cannot set "C" collation on <em>%s</em>

<em>Possible causes:</em>
  - A stored value is longer than %d characters
  - The database user lacks ALTER permission

<em>How to fix:</em>
  1. Look for unusually long course keys or names in the catalog
  2. Recreate tables with <em>horario create --force</em>`

	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  msg,
		Vars: []any{col.String(), col.varchar},
		Err:  fmt.Errorf("collate %s: %w", col, err),
	}
}
