package iotesting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Preamble imitates the lines an export carries above the header row.
var Preamble = []string{
	"Universidad Autónoma",
	"Dirección de Servicios Escolares",
	"Reporte de horarios por clase",
	"Ciclo 2025-1",
	"Generado por el sistema escolar",
	"Plantel Central",
	"Todas las modalidades",
	"Todos los grupos académicos",
	"Página 1",
}

// CatalogHeader returns a realistic header row of a catalog export.
func CatalogHeader() []string {
	res := []string{
		catalog.ColCycle,
		catalog.ColSession,
		catalog.ColCourseID,
		catalog.ColClassNumber,
		catalog.ColCombinedClasses,
		catalog.ColSubjectCode,
		catalog.ColCatalogNumber,
		catalog.ColSubject,
		catalog.ColInstructorID,
		catalog.ColInstructor,
		catalog.ColInstructorRole,
		catalog.ColCapacity,
		catalog.ColEnrollment,
		catalog.ColModality,
	}
	for _, d := range catalog.Weekdays {
		res = append(res, d.Column())
	}
	return append(res,
		catalog.ColStartTime,
		catalog.ColEndTime,
		catalog.ColRoom,
		catalog.ColRoomCapacity,
	)
}

// CatalogRecords lays out rows given by column label under the header,
// with the preamble on top.
func CatalogRecords(header []string, rows []map[string]string) [][]string {
	var res [][]string
	for _, p := range Preamble {
		res = append(res, []string{p})
	}
	res = append(res, header)
	for _, r := range rows {
		rec := make([]string, len(header))
		for i, h := range header {
			rec[i] = r[h]
		}
		res = append(res, rec)
	}
	return res
}

// WriteCatalogCSV writes rows as a CSV export and returns its path.
func WriteCatalogCSV(t *testing.T, rows []map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := csv.NewWriter(f)
	require.NoError(t, w.WriteAll(CatalogRecords(CatalogHeader(), rows)))
	return path
}

// WriteCatalogXLSX writes rows into the given sheet of a new workbook and
// returns its path.
func WriteCatalogXLSX(
	t *testing.T,
	sheet string,
	rows []map[string]string,
) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	for i, rec := range CatalogRecords(CatalogHeader(), rows) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		vals := make([]any, len(rec))
		for j := range rec {
			vals[j] = rec[j]
		}
		require.NoError(t, f.SetSheetRow(sheet, cell, &vals))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

// Row builds a row description with the usual columns of one meeting.
// Days are weekday labels such as "Lunes".
func Row(
	class, combined, subject, instructor, role, start, end, room string,
	days ...string,
) map[string]string {
	res := map[string]string{
		catalog.ColCycle:           "2025-1",
		catalog.ColSession:         "1",
		catalog.ColClassNumber:     class,
		catalog.ColCombinedClasses: combined,
		catalog.ColSubject:         subject,
		catalog.ColInstructor:      instructor,
		catalog.ColInstructorRole:  role,
		catalog.ColStartTime:       start,
		catalog.ColEndTime:         end,
		catalog.ColRoom:            room,
		catalog.ColModality:        "Presencial",
	}
	for _, d := range days {
		res[d] = "X"
	}
	return res
}
