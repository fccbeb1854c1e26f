package conflict

import (
	"slices"
	"strings"

	"github.com/backwell/horario/pkg/catalog"
)

// Cell is one time range of a day with every meeting held in it.
type Cell struct {
	Range  Range
	Labels []string
}

// Text joins the labels of the cell with commas.
func (c Cell) Text() string {
	return strings.Join(c.Labels, ", ")
}

// Day is one column of the weekly grid.
type Day struct {
	Day   catalog.Weekday
	Cells []Cell
}

// Grid is the weekly timetable: days in calendar order, each with its
// time ranges sorted by start and end.
type Grid struct {
	Days []Day
}

// BuildGrid lays slots out by day and exact time range. Meetings with the
// same range on the same day share one cell; repeated labels are kept
// once, in the order first seen.
func BuildGrid(slots []Slot) Grid {
	type cellKey struct {
		day catalog.Weekday
		rng Range
	}
	cells := make(map[cellKey]*Cell)
	seen := make(map[cellKey]map[string]struct{})
	for _, s := range slots {
		k := cellKey{s.Day, s.Range}
		c, ok := cells[k]
		if !ok {
			c = &Cell{Range: s.Range}
			cells[k] = c
			seen[k] = make(map[string]struct{})
		}
		if _, dup := seen[k][s.Label]; dup {
			continue
		}
		seen[k][s.Label] = struct{}{}
		c.Labels = append(c.Labels, s.Label)
	}

	var res Grid
	for _, d := range catalog.Weekdays {
		var day Day
		for k, c := range cells {
			if k.day == d {
				day.Cells = append(day.Cells, *c)
			}
		}
		if len(day.Cells) == 0 {
			continue
		}
		day.Day = d
		slices.SortFunc(day.Cells, func(a, b Cell) int {
			return a.Range.compare(b.Range)
		})
		res.Days = append(res.Days, day)
	}
	return res
}

// Ranges returns every distinct time range of the grid, sorted.
func (g Grid) Ranges() []Range {
	var res []Range
	for _, d := range g.Days {
		for _, c := range d.Cells {
			res = append(res, c.Range)
		}
	}
	slices.SortFunc(res, func(a, b Range) int { return a.compare(b) })
	return slices.Compact(res)
}

// Cell finds the cell of a day and range.
func (g Grid) Cell(day catalog.Weekday, r Range) (Cell, bool) {
	for _, d := range g.Days {
		if d.Day != day {
			continue
		}
		for _, c := range d.Cells {
			if c.Range == r {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// Conflicts compares the cells of every day pairwise. Each cell counts as
// a single meeting labelled with its joined labels, so identical ranges
// never conflict here.
func (g Grid) Conflicts() []Conflict {
	var res []Conflict
	for _, d := range g.Days {
		for i := range d.Cells {
			for j := i + 1; j < len(d.Cells); j++ {
				a, b := d.Cells[i], d.Cells[j]
				if !a.Range.Overlaps(b.Range) {
					continue
				}
				res = append(res, Conflict{
					Day:      d.Day,
					DayName:  d.Day.String(),
					A:        a.Range,
					B:        b.Range,
					RangeA:   a.Range.String(),
					RangeB:   b.Range.String(),
					LabelA:   a.Text(),
					LabelB:   b.Text(),
					Resource: ResourceTime,
				})
			}
		}
	}
	return res
}
