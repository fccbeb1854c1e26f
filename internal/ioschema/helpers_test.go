package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnDef(t *testing.T) {
	tests := []struct {
		name string
		col  columnDef
		str  string
		sql  string
	}{
		{
			name: "course key",
			col:  columnDef{"courses", "course_key", 255},
			str:  "courses.course_key",
			sql: `ALTER TABLE courses ALTER COLUMN course_key ` +
				`TYPE VARCHAR(255) COLLATE "C"`,
		},
		{
			name: "short column",
			col:  columnDef{"rooms", "name", 50},
			str:  "rooms.name",
			sql: `ALTER TABLE rooms ALTER COLUMN name ` +
				`TYPE VARCHAR(50) COLLATE "C"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.col.String())
			assert.Equal(t, tt.sql, tt.col.alterSQL())
		})
	}
}

func TestCollatedColumns(t *testing.T) {
	var keys []string
	for _, c := range collatedColumns {
		keys = append(keys, c.String())
	}
	assert.Contains(t, keys, "courses.course_key")
	assert.Contains(t, keys, "instructors.name")
}
