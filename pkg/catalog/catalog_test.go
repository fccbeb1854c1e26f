package catalog_test

import (
	"testing"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(line int, cells map[string]string) catalog.Row {
	return catalog.NewRow(line, cells)
}

func TestCourseKey(t *testing.T) {
	tests := []struct {
		msg      string
		combined string
		class    string
		res      string
	}{
		{"sorted combined", "101,102", "101", "101,102"},
		{"reversed combined", "102,101", "102", "101,102"},
		{"spaces and empties", " 102 , ,101, ", "102", "101,102"},
		{"single combined", "103", "999", "103"},
		{"no combined", "", "2045", "2045"},
		{"only commas", " , ", "2046", "2046"},
		{"nothing", "", "", ""},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			r := row(1, map[string]string{
				catalog.ColCombinedClasses: v.combined,
				catalog.ColClassNumber:     v.class,
			})
			assert.Equal(t, v.res, catalog.CourseKey(r))
		})
	}
}

func TestGroupRows(t *testing.T) {
	rows := []catalog.Row{
		row(1, map[string]string{catalog.ColCombinedClasses: "102,101"}),
		row(2, map[string]string{catalog.ColCombinedClasses: "103"}),
		row(3, map[string]string{catalog.ColCombinedClasses: "101, 102"}),
		row(4, map[string]string{catalog.ColClassNumber: ""}),
		row(5, map[string]string{catalog.ColClassNumber: "050"}),
	}

	groups, unkeyed := catalog.GroupRows(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, "050", groups[0].Key)
	assert.Equal(t, "101,102", groups[1].Key)
	assert.Equal(t, "103", groups[2].Key)

	require.Len(t, groups[1].Rows, 2)
	assert.Equal(t, 1, groups[1].Rows[0].Line)
	assert.Equal(t, 3, groups[1].Rows[1].Line)

	require.Len(t, unkeyed, 1)
	assert.Equal(t, 4, unkeyed[0].Line)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   string
		err   bool
	}{
		{"12-hour pm", "01:30 PM", "13:30", false},
		{"24-hour", "13:30", "13:30", false},
		{"12-hour single digit", "9:05 am", "09:05", false},
		{"12-hour no space", "11:00PM", "23:00", false},
		{"12-hour dotted", "1:30 p.m.", "13:30", false},
		{"noon", "12:00 PM", "12:00", false},
		{"midnight", "12:00 AM", "00:00", false},
		{"with seconds", "07:00:00", "07:00", false},
		{"day fraction", "0.5625", "13:30", false},
		{"out of range", "25:99", "", true},
		{"text", "mañana", "", true},
		{"empty", "  ", "", true},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := catalog.ParseClock(v.input)
			if v.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.res, res.String())
		})
	}

	t.Run("12 and 24 hour formats agree", func(t *testing.T) {
		a, err := catalog.ParseClock("01:30 PM")
		require.NoError(t, err)
		b, err := catalog.ParseClock("13:30")
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Equal(t, "13:30:00", a.SQL())
	})
}

func TestNormalizeRoom(t *testing.T) {
	tests := []struct {
		msg      string
		room     string
		modality string
		res      string
	}{
		{"online overrides room", "R 32", "EN LÍNEA", catalog.RoomOnline},
		{"online without accent", "", "En linea", catalog.RoomOnline},
		{"online glued", "A-1", "ENLINEA", catalog.RoomOnline},
		{"online english", "A-1", "Online", catalog.RoomOnline},
		{"blank in person", "", "Presencial", catalog.RoomUnassigned},
		{"blank modality", "  ", "", catalog.RoomUnassigned},
		{"trimmed room", "  R 32 ", "Presencial", "R 32"},
		{"hybrid keeps room", "B-4", "Mixta", "B-4"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.res, catalog.NormalizeRoom(v.room, v.modality))
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, catalog.RoleTitular, catalog.ParseRole("TITULAR"))
	assert.Equal(t, catalog.RoleAdjunto, catalog.ParseRole(" adjunto "))
	assert.Equal(t, catalog.RoleNone, catalog.ParseRole("auxiliar"))
	assert.Equal(t, catalog.RoleNone, catalog.ParseRole(""))
}

func TestParseWeekday(t *testing.T) {
	d, ok := catalog.ParseWeekday("miercoles")
	assert.True(t, ok)
	assert.Equal(t, catalog.Miercoles, d)

	d, ok = catalog.ParseWeekday("SÁBADO")
	assert.True(t, ok)
	assert.Equal(t, catalog.Sabado, d)

	_, ok = catalog.ParseWeekday("Monday")
	assert.False(t, ok)
}

func TestHeader(t *testing.T) {
	h := catalog.NewHeader([]string{
		" Profesor ", "Total  inscripciones", "Capacidad Insc. Comb.", "",
	})

	assert.True(t, h.Has(catalog.ColInstructor))
	assert.True(t, h.Has(catalog.ColEnrollment))
	assert.True(t, h.Has(catalog.ColCombinedCapacity),
		"capacity fallback should be picked up")
	assert.Equal(t,
		[]string{catalog.ColClassNumber, catalog.ColSubject},
		h.Missing(catalog.ColClassNumber, catalog.ColInstructor, catalog.ColSubject))

	r := h.Row(12, []string{"Ana Pérez", " 35 ", "60"})
	assert.Equal(t, 12, r.Line)
	assert.Equal(t, "Ana Pérez", r.Get(catalog.ColInstructor))
	assert.Equal(t, "35", r.Get(catalog.ColEnrollment))
	assert.Equal(t, "60", r.Get(catalog.ColCombinedCapacity))
	assert.Equal(t, "", r.Get(catalog.ColRoom))
}

func TestFieldsMerge(t *testing.T) {
	rows := []catalog.Row{
		row(1, map[string]string{catalog.ColCycle: "", catalog.ColSession: "A"}),
		row(2, map[string]string{catalog.ColCycle: "2024", catalog.ColSession: "B"}),
	}
	var f catalog.Fields
	for _, r := range rows {
		f = f.Merge(r)
	}
	assert.Equal(t, "A", f.Session)
	assert.Equal(t, "2024", f.Cycle)
}

func meeting(line int, ins, role, subject, start, end string,
	extra map[string]string) catalog.Row {
	cells := map[string]string{
		catalog.ColCombinedClasses: "101,102",
		catalog.ColClassNumber:     "101",
		catalog.ColInstructor:      ins,
		catalog.ColInstructorRole:  role,
		catalog.ColSubject:         subject,
		catalog.ColStartTime:       start,
		catalog.ColEndTime:         end,
	}
	for k, v := range extra {
		cells[k] = v
	}
	return catalog.NewRow(line, cells)
}

func TestReconcile(t *testing.T) {
	g := catalog.Group{
		Key: "101,102",
		Rows: []catalog.Row{
			meeting(1, "", "Titular", "Cálculo", "10:00", "11:30",
				map[string]string{"Lunes": "X"}),
			meeting(2, "Ana Pérez", "Titular", "Cálculo", "10:00 AM", "11:30 AM",
				map[string]string{
					"Lunes": "X", "Miércoles": "x",
					catalog.ColSession: "A", catalog.ColRoom: "R 32",
					catalog.ColRoomCapacity: "40.0",
					catalog.ColCatalogNumber: "MAT-1",
				}),
			meeting(3, "Luis Gómez", "Adjunto", "", "10:00", "11:30", nil),
			meeting(4, "Luis Gómez", "adjunto", "Cálculo", "25:99", "11:30",
				map[string]string{
					"Viernes": "X", catalog.ColCycle: "2024",
					catalog.ColSession: "B",
				}),
			meeting(5, "Ana Pérez", "Titular", "Cálculo", "10:00", "11:30",
				map[string]string{"Lunes": "X", catalog.ColRoom: "R 32"}),
			meeting(6, "Eva Ruiz", "Titular", "Cálculo", "12:00", "12:00",
				map[string]string{"Martes": "X"}),
		},
	}

	sec := catalog.Reconcile(g, catalog.KeyByName)
	require.True(t, sec.IsValid())

	assert.Equal(t, "101,102", sec.Key)
	assert.Equal(t, "Cálculo", sec.Subject.Name)
	assert.Equal(t, "MAT-1", sec.Subject.CatalogNumber)
	assert.Equal(t, "A", sec.Fields.Session)
	assert.Equal(t, "2024", sec.Fields.Cycle)
	assert.Equal(t, 4, sec.Admissible)

	assert.Equal(t, "Ana Pérez", sec.Primary.Name)
	assert.Equal(t, "Luis Gómez", sec.Secondary.Name)
	assert.Len(t, sec.Instructors, 3)

	require.Len(t, sec.Slots, 2, "duplicate monday slot is merged")
	assert.Equal(t, catalog.Lunes, sec.Slots[0].Day)
	assert.Equal(t, catalog.Miercoles, sec.Slots[1].Day)
	assert.Equal(t, "R 32", sec.Slots[0].Room.Name)
	assert.Equal(t, 40, sec.Slots[0].Room.Capacity)
	assert.Equal(t, "10:00", sec.Slots[0].Start.String())
	assert.Equal(t, "11:30", sec.Slots[0].End.String())

	reasons := make(map[string]int)
	for _, is := range sec.Issues {
		reasons[is.Reason]++
		assert.Equal(t, "101,102", is.Key)
	}
	assert.Equal(t, 1, reasons[catalog.ReasonNoInstructor])
	assert.Equal(t, 1, reasons[catalog.ReasonNoSubject])
	assert.Equal(t, 1, reasons[catalog.ReasonBadTime])
	assert.Equal(t, 1, reasons[catalog.ReasonEmptyRange])
}

func TestReconcileNoAdmissibleRows(t *testing.T) {
	g := catalog.Group{
		Key: "7",
		Rows: []catalog.Row{
			meeting(1, "Ana Pérez", "Titular", "", "10:00", "11:00", nil),
		},
	}
	sec := catalog.Reconcile(g, nil)
	assert.False(t, sec.IsValid())
	assert.Len(t, sec.Instructors, 1, "instructor is still recorded")
}

func TestReconcileOnlineRoom(t *testing.T) {
	g := catalog.Group{
		Key: "101,102",
		Rows: []catalog.Row{
			meeting(1, "Ana Pérez", "Titular", "Cálculo", "10:00", "11:00",
				map[string]string{
					"Jueves": "X", catalog.ColRoom: "R 32",
					catalog.ColModality: "EN LÍNEA",
					catalog.ColRoomCapacity: "40",
				}),
		},
	}
	sec := catalog.Reconcile(g, nil)
	require.Len(t, sec.Slots, 1)
	assert.Equal(t, catalog.RoomOnline, sec.Slots[0].Room.Name)
	assert.Equal(t, 0, sec.Slots[0].Room.Capacity)
}

func TestInstructorKeyStrategies(t *testing.T) {
	assert.Equal(t, "Ana", catalog.KeyByName(" Ana ", "77"))
	assert.Equal(t, "id:77", catalog.KeyByExternalID("Ana", " 77 "))
	assert.Equal(t, "Ana", catalog.KeyByExternalID("Ana", ""))

	fn := catalog.InstructorKey("external-id")
	assert.Equal(t, "id:5", fn("Ana", "5"))
	fn = catalog.InstructorKey("name")
	assert.Equal(t, "Ana", fn("Ana", "5"))

	g := catalog.Group{
		Key: "1",
		Rows: []catalog.Row{
			catalog.NewRow(1, map[string]string{
				catalog.ColInstructor: "Ana Pérez", catalog.ColInstructorID: "5",
				catalog.ColSubject: "Física",
			}),
			catalog.NewRow(2, map[string]string{
				catalog.ColInstructor: "Ana Perez", catalog.ColInstructorID: "5",
				catalog.ColSubject: "Física",
			}),
		},
	}
	assert.Len(t, catalog.Reconcile(g, catalog.KeyByName).Instructors, 2)
	assert.Len(t, catalog.Reconcile(g, catalog.KeyByExternalID).Instructors, 1)
}

func TestParseCount(t *testing.T) {
	n, ok := catalog.ParseCount("30.0")
	assert.True(t, ok)
	assert.Equal(t, 30, n)

	_, ok = catalog.ParseCount("")
	assert.False(t, ok)
	_, ok = catalog.ParseCount("treinta")
	assert.False(t, ok)
}
