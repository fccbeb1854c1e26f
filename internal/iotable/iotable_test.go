package iotable_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/backwell/horario/internal/iotable"
	"github.com/backwell/horario/internal/iotesting"
	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opts = iotable.Options{HeaderRow: 9}

func sampleRows() []map[string]string {
	return []map[string]string{
		iotesting.Row("1001", "", "Algebra", "Ana Pérez", "Titular",
			"07:00", "09:00", "A-101", "Lunes", "Miércoles"),
		{},
		iotesting.Row("1002", "1002,1003", "Fisica", "Luis Gómez", "Titular",
			"09:00", "11:00", "", "Martes"),
	}
}

func TestReadCSV(t *testing.T) {
	path := iotesting.WriteCatalogCSV(t, sampleRows())

	tbl, err := iotable.Read(path, opts)
	require.NoError(t, err)

	assert.Equal(t, path, tbl.Source)
	assert.Empty(t, tbl.Sheet)
	assert.True(t, tbl.Header.Has(catalog.ColRoomCapacity))
	require.Len(t, tbl.Rows, 2, "blank line is dropped")

	r := tbl.Rows[0]
	assert.Equal(t, 11, r.Line)
	assert.Equal(t, "1001", r.Get(catalog.ColClassNumber))
	assert.Equal(t, "Ana Pérez", r.Get(catalog.ColInstructor))
	assert.Equal(t, "X", r.Get("Miércoles"))

	r = tbl.Rows[1]
	assert.Equal(t, 13, r.Line)
	assert.Equal(t, "1002,1003", catalog.CourseKey(r))
}

func TestReadXLSX(t *testing.T) {
	rows := sampleRows()
	rows = []map[string]string{rows[0], rows[2]}
	path := iotesting.WriteCatalogXLSX(t, "Horarios", rows)

	tests := []struct {
		name  string
		sheet string
	}{
		{"first sheet", ""},
		{"named sheet", "Horarios"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := iotable.Read(path,
				iotable.Options{Sheet: tt.sheet, HeaderRow: 9})
			require.NoError(t, err)
			assert.Equal(t, "Horarios", tbl.Sheet)
			require.Len(t, tbl.Rows, 2)
			assert.Equal(t, 11, tbl.Rows[0].Line)
			assert.Equal(t, "Algebra", tbl.Rows[0].Get(catalog.ColSubject))
			assert.Equal(t, "09:00", tbl.Rows[1].Get(catalog.ColStartTime))
		})
	}
}

func TestReadErrors(t *testing.T) {
	xlsx := iotesting.WriteCatalogXLSX(t, "Horarios", sampleRows()[:1])
	csvPath := iotesting.WriteCatalogCSV(t, sampleRows())

	noEnd := filepath.Join(t.TempDir(), "bad.csv")
	f, err := os.Create(noEnd)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll([][]string{
		{catalog.ColClassNumber, catalog.ColCombinedClasses,
			catalog.ColInstructor, catalog.ColSubject, catalog.ColStartTime},
		{"1001", "", "Ana", "Algebra", "07:00"},
	}))
	f.Close()

	tests := []struct {
		name string
		path string
		opts iotable.Options
		code gn.ErrorCode
	}{
		{"unknown extension", "horario.txt", opts,
			errcode.ImportUnknownFormatError},
		{"missing file", filepath.Join(t.TempDir(), "none.csv"), opts,
			errcode.ImportReadError},
		{"sheet not found", xlsx, iotable.Options{Sheet: "Otra", HeaderRow: 9},
			errcode.ImportSheetNotFoundError},
		{"header out of range", csvPath, iotable.Options{HeaderRow: 50},
			errcode.ImportShapeError},
		{"wrong header row", csvPath, iotable.Options{HeaderRow: 0},
			errcode.ImportShapeError},
		{"missing column", noEnd, iotable.Options{HeaderRow: 0},
			errcode.ImportShapeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iotable.Read(tt.path, tt.opts)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
		})
	}
}

func TestReadCSV_BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	content := "\ufeff" + catalog.ColClassNumber + "," +
		catalog.ColCombinedClasses + "," + catalog.ColInstructor + "," +
		catalog.ColSubject + "," + catalog.ColStartTime + "," +
		catalog.ColEndTime + "\n" +
		"1001,,Ana,Algebra,07:00,09:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := iotable.Read(path, iotable.Options{HeaderRow: 0})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "1001", tbl.Rows[0].Get(catalog.ColClassNumber))
	assert.Equal(t, 2, tbl.Rows[0].Line)
}
