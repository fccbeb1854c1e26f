package ioreport_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/backwell/horario/internal/ioreport"
	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/errcode"
	"github.com/backwell/horario/pkg/planner"
	"github.com/backwell/horario/pkg/store"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var anchor = time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC)

func views() []store.SlotView {
	clock := catalog.MustParseClock
	return []store.SlotView{
		{
			CourseKey: "1001", ClassNumber: "1001", Subject: "Algebra",
			Instructor: "Ana Pérez", Room: "A-101", Day: catalog.Lunes,
			Start: clock("07:00"), End: clock("09:00"), Cycle: "2025-1",
		},
		{
			CourseKey: "1002", ClassNumber: "1002", Subject: "Fisica",
			Instructor: "Luis Gómez", Room: "B-2", Day: catalog.Lunes,
			Start: clock("08:00"), End: clock("10:00"), Cycle: "2025-1",
		},
		{
			CourseKey: "1003", ClassNumber: "1003", Subject: "Quimica",
			Day: catalog.Martes, Start: clock("09:00"), End: clock("11:00"),
		},
	}
}

func render(t *testing.T, format string, fn func(*ioreport.Writer) error) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := ioreport.New(&buf, ioreport.Options{
		Format: format,
		Anchor: anchor,
		Weeks:  16,
	})
	require.NoError(t, err)
	require.NoError(t, fn(w))
	return buf.String()
}

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	return gnErr.Code
}

func TestNew(t *testing.T) {
	_, err := ioreport.New(&bytes.Buffer{}, ioreport.Options{Format: "pdf"})
	assert.Equal(t, errcode.ReportFormatError, errCode(t, err))

	for _, f := range ioreport.Formats {
		_, err = ioreport.New(&bytes.Buffer{}, ioreport.Options{Format: f})
		assert.NoError(t, err, f)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		msg  string
		in   time.Time
		want time.Time
	}{
		{"wednesday", anchor, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2025, 10, 13, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 10, 19, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ioreport.WeekStart(tt.in), tt.msg)
	}
}

func TestConflicts(t *testing.T) {
	cc := conflict.Detect(store.ConflictSlots(views()), conflict.Options{})
	require.Len(t, cc, 1)

	t.Run("table", func(t *testing.T) {
		out := render(t, "table", func(w *ioreport.Writer) error {
			return w.Conflicts(cc)
		})
		assert.Contains(t, out, "Algebra (Ana Pérez)")
		assert.Contains(t, out, "Fisica (Luis Gómez)")
		assert.Contains(t, out, "1 conflicts found")

		out = render(t, "table", func(w *ioreport.Writer) error {
			return w.Conflicts(nil)
		})
		assert.Equal(t, "No conflicts found\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out := render(t, "json", func(w *ioreport.Writer) error {
			return w.Conflicts(cc)
		})
		var res []map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "Lunes", res[0]["day"])
		assert.Equal(t, "07:00 - 09:00", res[0]["rangeA"])
		assert.Equal(t, "time", res[0]["resource"])

		out = render(t, "json", func(w *ioreport.Writer) error {
			return w.Conflicts(nil)
		})
		assert.Equal(t, "[]", strings.TrimSpace(out))
	})

	t.Run("csv", func(t *testing.T) {
		out := render(t, "csv", func(w *ioreport.Writer) error {
			return w.Conflicts(cc)
		})
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "day,range_a"))
	})

	t.Run("ics", func(t *testing.T) {
		w, err := ioreport.New(&bytes.Buffer{}, ioreport.Options{Format: "ics"})
		require.NoError(t, err)
		assert.Equal(t, errcode.ReportFormatError, errCode(t, w.Conflicts(cc)))
	})
}

func TestTimetable(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out := render(t, "table", func(w *ioreport.Writer) error {
			return w.Timetable(views())
		})
		assert.Contains(t, out, "Lunes")
		assert.Contains(t, out, "Martes")
		assert.Contains(t, out, "Quimica")
		assert.Contains(t, out, "Conflicts:")
	})

	t.Run("yaml", func(t *testing.T) {
		out := render(t, "yaml", func(w *ioreport.Writer) error {
			return w.Timetable(views())
		})
		var res struct {
			Days []struct {
				Day   string `yaml:"day"`
				Cells []struct {
					Range  string   `yaml:"range"`
					Labels []string `yaml:"labels"`
				} `yaml:"cells"`
			} `yaml:"days"`
			Conflicts []map[string]string `yaml:"conflicts"`
			Slots     []map[string]string `yaml:"slots"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &res))
		require.Len(t, res.Days, 2)
		assert.Equal(t, "Lunes", res.Days[0].Day)
		assert.Len(t, res.Days[0].Cells, 2)
		assert.Len(t, res.Conflicts, 1)
		assert.Len(t, res.Slots, 3)
		assert.Equal(t, "1003", res.Slots[2]["course_key"])
	})

	t.Run("xlsx", func(t *testing.T) {
		out := render(t, "xlsx", func(w *ioreport.Writer) error {
			return w.Timetable(views())
		})
		f, err := excelize.OpenReader(strings.NewReader(out))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{
			ioreport.SheetGrid, ioreport.SheetSlots, ioreport.SheetConflicts,
		}, f.GetSheetList())

		rows, err := f.GetRows(ioreport.SheetGrid)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"Hora", "Lunes", "Martes"}, rows[0])
		assert.Equal(t, "Algebra (Ana Pérez)", rows[1][1])

		rows, err = f.GetRows(ioreport.SheetSlots)
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})

	t.Run("ics", func(t *testing.T) {
		out := render(t, "ics", func(w *ioreport.Writer) error {
			return w.Timetable(views())
		})
		cal, err := ics.ParseCalendar(strings.NewReader(out))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 3)

		ev := events[2]
		val := func(p ics.ComponentProperty) string {
			prop := ev.GetProperty(p)
			require.NotNil(t, prop)
			return prop.Value
		}
		assert.Equal(t, "20251014T090000", val(ics.ComponentPropertyDtStart))
		assert.Equal(t, "20251014T110000", val(ics.ComponentPropertyDtEnd))
		assert.Equal(t, "FREQ=WEEKLY;COUNT=16", val(ics.ComponentPropertyRrule))
		assert.Equal(t, "Quimica", val(ics.ComponentPropertySummary))
		assert.Nil(t, ev.GetProperty(ics.ComponentPropertyLocation))
		assert.True(t, strings.HasSuffix(ev.Id(), "@horario"))

		again := render(t, "ics", func(w *ioreport.Writer) error {
			return w.Timetable(views())
		})
		cal, err = ics.ParseCalendar(strings.NewReader(again))
		require.NoError(t, err)
		for i, e := range cal.Events() {
			assert.Equal(t, events[i].Id(), e.Id(), "event ids are stable")
		}
	})

	t.Run("ics co-taught", func(t *testing.T) {
		clock := catalog.MustParseClock
		slot := store.SlotView{
			CourseKey: "1010", Subject: "Historia", Instructor: "Ana Pérez",
			Room: "A-101", Day: catalog.Jueves,
			Start: clock("07:00"), End: clock("09:00"),
		}
		second := slot
		second.Instructor = "Eva Ruiz"
		stamp := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

		var buf bytes.Buffer
		w, err := ioreport.New(&buf, ioreport.Options{
			Format: "ics", Anchor: anchor, Stamp: stamp,
		})
		require.NoError(t, err)
		require.NoError(t, w.Timetable([]store.SlotView{slot, second}))

		cal, err := ics.ParseCalendar(strings.NewReader(buf.String()))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 2)
		assert.NotEqual(t, events[0].Id(), events[1].Id())
		for _, ev := range events {
			prop := ev.GetProperty(ics.ComponentProperty("DTSTAMP"))
			require.NotNil(t, prop)
			assert.Equal(t, "20260302T083000Z", prop.Value)
		}
	})
}

func TestPlans(t *testing.T) {
	opts := store.PlanOptions(views())
	plans := planner.Generate(opts, planner.Request{MinSize: 2})
	require.Len(t, plans, 2)

	t.Run("table", func(t *testing.T) {
		out := render(t, "table", func(w *ioreport.Writer) error {
			return w.Plans(plans)
		})
		assert.Contains(t, out, "Plan 1:")
		assert.Contains(t, out, "Martes 09:00 - 11:00")

		out = render(t, "table", func(w *ioreport.Writer) error {
			return w.Plans(nil)
		})
		assert.Equal(t, "No compatible schedules found\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out := render(t, "json", func(w *ioreport.Writer) error {
			return w.Plans(nil)
		})
		assert.Equal(t, "[]", strings.TrimSpace(out))
	})

	t.Run("ics", func(t *testing.T) {
		w, err := ioreport.New(&bytes.Buffer{}, ioreport.Options{Format: "ics"})
		require.NoError(t, err)
		assert.Equal(t, errcode.ReportFormatError, errCode(t, w.Plans(plans)))
	})
}
