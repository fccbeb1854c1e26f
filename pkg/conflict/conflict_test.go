package conflict_test

import (
	"testing"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/conflict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(start, end string) conflict.Range {
	return conflict.Range{
		Start: catalog.MustParseClock(start),
		End:   catalog.MustParseClock(end),
	}
}

func slot(day catalog.Weekday, start, end, label, room, ins string) conflict.Slot {
	return conflict.Slot{
		Day:        day,
		Range:      rng(start, end),
		Label:      label,
		Room:       room,
		Instructor: ins,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		msg  string
		a, b conflict.Range
		res  bool
	}{
		{"partial overlap", rng("10:00", "11:30"), rng("11:00", "12:00"), true},
		{"touching", rng("10:00", "11:30"), rng("11:30", "13:00"), false},
		{"contained", rng("08:00", "12:00"), rng("09:00", "10:00"), true},
		{"identical", rng("08:00", "09:00"), rng("08:00", "09:00"), true},
		{"disjoint", rng("08:00", "09:00"), rng("10:00", "11:00"), false},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.res, v.a.Overlaps(v.b))
			assert.Equal(t, v.res, v.b.Overlaps(v.a))
		})
	}
}

func TestDetect(t *testing.T) {
	t.Run("overlap on the same day", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Lunes, "10:00", "11:30", "Álgebra (Ana)", "R1", "Ana"),
			slot(catalog.Lunes, "11:00", "12:00", "Física (Luis)", "R2", "Luis"),
		}, conflict.Options{})
		require.Len(t, res, 1)
		c := res[0]
		assert.Equal(t, "Lunes", c.DayName)
		assert.Equal(t, "10:00 - 11:30", c.RangeA)
		assert.Equal(t, "11:00 - 12:00", c.RangeB)
		assert.Equal(t, "Álgebra (Ana)", c.LabelA)
		assert.Equal(t, "Física (Luis)", c.LabelB)
		assert.Equal(t, conflict.ResourceTime, c.Resource)
	})

	t.Run("touching boundary", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Lunes, "10:00", "11:30", "A", "", ""),
			slot(catalog.Lunes, "11:30", "13:00", "B", "", ""),
		}, conflict.Options{})
		assert.Empty(t, res)
	})

	t.Run("different days", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Lunes, "10:00", "11:30", "A", "", ""),
			slot(catalog.Martes, "10:00", "11:30", "B", "", ""),
		}, conflict.Options{})
		assert.Empty(t, res)
	})

	t.Run("identical ranges are not a time conflict", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Jueves, "10:00", "11:00", "A", "R1", "Ana"),
			slot(catalog.Jueves, "10:00", "11:00", "B", "R1", "Luis"),
		}, conflict.Options{})
		assert.Empty(t, res)
	})

	t.Run("identical ranges collide in one room", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Jueves, "10:00", "11:00", "A", "R1", "Ana"),
			slot(catalog.Jueves, "10:00", "11:00", "B", "R1", "Luis"),
			slot(catalog.Jueves, "10:30", "11:30", "C", "R2", "Ana"),
		}, conflict.Options{ByRoom: true})
		require.Len(t, res, 1)
		assert.Equal(t, conflict.ResourceRoom, res[0].Resource)
		assert.Equal(t, "R1", res[0].Holder)
	})

	t.Run("instructor collisions", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Jueves, "10:00", "11:00", "A", "R1", "Ana"),
			slot(catalog.Jueves, "10:00", "11:00", "B", "R1", "Luis"),
			slot(catalog.Jueves, "10:30", "11:30", "C", "R2", "Ana"),
		}, conflict.Options{ByInstructor: true})
		require.Len(t, res, 1)
		assert.Equal(t, "Ana", res[0].Holder)
		assert.Equal(t, "A", res[0].LabelA)
		assert.Equal(t, "C", res[0].LabelB)
	})

	t.Run("sentinel rooms are not shared", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Viernes, "10:00", "11:00", "A", catalog.RoomOnline, "Ana"),
			slot(catalog.Viernes, "10:00", "11:00", "B", catalog.RoomOnline, "Luis"),
		}, conflict.Options{ByRoom: true})
		assert.Empty(t, res)
	})

	t.Run("sorted output", func(t *testing.T) {
		res := conflict.Detect([]conflict.Slot{
			slot(catalog.Martes, "09:00", "10:00", "C", "", ""),
			slot(catalog.Martes, "09:30", "10:30", "D", "", ""),
			slot(catalog.Lunes, "08:00", "10:00", "A", "", ""),
			slot(catalog.Lunes, "09:00", "09:30", "B", "", ""),
			slot(catalog.Lunes, "09:15", "11:00", "E", "", ""),
		}, conflict.Options{})
		require.Len(t, res, 4)
		assert.Equal(t, catalog.Lunes, res[0].Day)
		assert.Equal(t, "A", res[0].LabelA)
		assert.Equal(t, "B", res[0].LabelB)
		assert.Equal(t, "A", res[1].LabelA)
		assert.Equal(t, "E", res[1].LabelB)
		assert.Equal(t, "B", res[2].LabelA)
		assert.Equal(t, "E", res[2].LabelB)
		assert.Equal(t, catalog.Martes, res[3].Day)
	})
}

func TestBuildGrid(t *testing.T) {
	g := conflict.BuildGrid([]conflict.Slot{
		slot(catalog.Miercoles, "10:00", "11:00", "Física (Luis)", "", ""),
		slot(catalog.Lunes, "10:00", "11:30", "Álgebra (Ana)", "", ""),
		slot(catalog.Lunes, "10:00", "11:30", "Química (Eva)", "", ""),
		slot(catalog.Lunes, "10:00", "11:30", "Álgebra (Ana)", "", ""),
		slot(catalog.Lunes, "08:00", "09:00", "Historia (Leo)", "", ""),
		slot(catalog.Lunes, "11:00", "12:00", "Lógica (Ana)", "", ""),
	})

	require.Len(t, g.Days, 2)
	assert.Equal(t, catalog.Lunes, g.Days[0].Day)
	assert.Equal(t, catalog.Miercoles, g.Days[1].Day)

	mon := g.Days[0]
	require.Len(t, mon.Cells, 3)
	assert.Equal(t, "08:00 - 09:00", mon.Cells[0].Range.String())
	assert.Equal(t, "Álgebra (Ana), Química (Eva)", mon.Cells[1].Text())

	c, ok := g.Cell(catalog.Lunes, rng("10:00", "11:30"))
	assert.True(t, ok)
	assert.Len(t, c.Labels, 2)
	_, ok = g.Cell(catalog.Martes, rng("10:00", "11:30"))
	assert.False(t, ok)

	assert.Len(t, g.Ranges(), 4)

	cc := g.Conflicts()
	require.Len(t, cc, 1)
	assert.Equal(t, "Álgebra (Ana), Química (Eva)", cc[0].LabelA)
	assert.Equal(t, "Lógica (Ana)", cc[0].LabelB)
}
