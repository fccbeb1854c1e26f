package ioschema

import "fmt"

// columnDef is a text column that gets "C" collation on PostgreSQL.
type columnDef struct {
	table, column string
	varchar       int
}

// collatedColumns hold identifiers that reports sort and compare byte by
// byte: course keys and the names of subjects, instructors and rooms.
var collatedColumns = []columnDef{
	{"courses", "course_key", 255},
	{"subjects", "name", 255},
	{"instructors", "name", 255},
	{"rooms", "name", 255},
}

func (c columnDef) String() string {
	return c.table + "." + c.column
}

// alterSQL returns the statement that changes the column to a bounded
// varchar with "C" collation.
func (c columnDef) alterSQL() string {
	return fmt.Sprintf(`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		c.table, c.column, c.varchar)
}
