// Package conflict finds overlapping meetings in a weekly schedule and
// lays the schedule out as a day by time-range grid.
package conflict

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/backwell/horario/pkg/catalog"
)

// Range is a half-open interval of a day.
type Range struct {
	Start catalog.Clock `json:"start" yaml:"start"`
	End   catalog.Clock `json:"end"   yaml:"end"`
}

// Overlaps reports whether two ranges share any time. Ranges that only
// touch (one ends when the other starts) do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}

func (r Range) compare(o Range) int {
	if c := cmp.Compare(r.Start, o.Start); c != 0 {
		return c
	}
	return cmp.Compare(r.End, o.End)
}

// Slot is a meeting as seen by the detector.
type Slot struct {
	Day        catalog.Weekday
	Range      Range
	Label      string
	Room       string
	Instructor string
}

// Resource names the kind of collision reported.
type Resource string

const (
	// ResourceTime is a plain time overlap.
	ResourceTime Resource = "time"
	// ResourceRoom is an overlap of two meetings in the same room.
	ResourceRoom Resource = "room"
	// ResourceInstructor is an overlap of two meetings of one instructor.
	ResourceInstructor Resource = "instructor"
)

// Conflict is one pair of overlapping meetings.
type Conflict struct {
	Day      catalog.Weekday `json:"-"        yaml:"-"`
	DayName  string          `json:"day"      yaml:"day"`
	A        Range           `json:"-"        yaml:"-"`
	B        Range           `json:"-"        yaml:"-"`
	RangeA   string          `json:"rangeA"   yaml:"range_a"`
	RangeB   string          `json:"rangeB"   yaml:"range_b"`
	LabelA   string          `json:"labelA"   yaml:"label_a"`
	LabelB   string          `json:"labelB"   yaml:"label_b"`
	Resource Resource        `json:"resource" yaml:"resource"`
	// Holder is the shared room or instructor for resource conflicts.
	Holder string `json:"holder,omitempty" yaml:"holder,omitempty"`
}

// Options select the collision checks.
type Options struct {
	// ByRoom pairs only meetings held in the same room.
	ByRoom bool
	// ByInstructor pairs only meetings of the same instructor.
	ByInstructor bool
}

// Detect reports every pair of overlapping meetings per day.
//
// Without options only time ranges are compared and two meetings with
// the same range are not a conflict, they share a grid cell. With ByRoom
// or ByInstructor the shared resource becomes part of the pairing key and
// identical ranges collide too.
func Detect(slots []Slot, opts Options) []Conflict {
	var res []Conflict
	if !opts.ByRoom && !opts.ByInstructor {
		res = detect(slots, ResourceTime, nil)
	}
	if opts.ByRoom {
		res = append(res, detect(slots, ResourceRoom,
			func(s Slot) string { return s.Room })...)
	}
	if opts.ByInstructor {
		res = append(res, detect(slots, ResourceInstructor,
			func(s Slot) string { return s.Instructor })...)
	}
	sortConflicts(res)
	return res
}

type bucketKey struct {
	day    catalog.Weekday
	holder string
}

func detect(
	slots []Slot,
	kind Resource,
	holderFn func(Slot) string,
) []Conflict {
	buckets := make(map[bucketKey][]Slot)
	for _, s := range slots {
		k := bucketKey{day: s.Day}
		if holderFn != nil {
			k.holder = holderFn(s)
			if k.holder == "" || isSentinelRoom(kind, k.holder) {
				continue
			}
		}
		buckets[k] = append(buckets[k], s)
	}

	var res []Conflict
	for k, ss := range buckets {
		slices.SortStableFunc(ss, func(a, b Slot) int {
			if c := a.Range.compare(b.Range); c != 0 {
				return c
			}
			return cmp.Compare(a.Label, b.Label)
		})
		for i := range ss {
			for j := i + 1; j < len(ss); j++ {
				a, b := ss[i], ss[j]
				if b.Range.Start >= a.Range.End {
					break
				}
				if kind == ResourceTime && a.Range == b.Range {
					continue
				}
				if !a.Range.Overlaps(b.Range) {
					continue
				}
				res = append(res, newConflict(k, kind, a, b))
			}
		}
	}
	return res
}

// isSentinelRoom keeps online and unassigned meetings out of room
// checks, they do not compete for a physical room.
func isSentinelRoom(kind Resource, holder string) bool {
	return kind == ResourceRoom &&
		(holder == catalog.RoomOnline || holder == catalog.RoomUnassigned)
}

func newConflict(k bucketKey, kind Resource, a, b Slot) Conflict {
	return Conflict{
		Day:      k.day,
		DayName:  k.day.String(),
		A:        a.Range,
		B:        b.Range,
		RangeA:   a.Range.String(),
		RangeB:   b.Range.String(),
		LabelA:   a.Label,
		LabelB:   b.Label,
		Resource: kind,
		Holder:   k.holder,
	}
}

func sortConflicts(cc []Conflict) {
	slices.SortFunc(cc, func(x, y Conflict) int {
		if c := cmp.Compare(x.Day, y.Day); c != 0 {
			return c
		}
		if c := x.A.compare(y.A); c != 0 {
			return c
		}
		if c := x.B.compare(y.B); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Resource, y.Resource); c != 0 {
			return c
		}
		if c := cmp.Compare(x.LabelA, y.LabelA); c != 0 {
			return c
		}
		return cmp.Compare(x.LabelB, y.LabelB)
	})
}
