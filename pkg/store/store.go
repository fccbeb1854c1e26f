// Package store declares access to the normalized catalog: writing
// reconciled sections during import and reading meetings back for
// reports.
package store

import (
	"cmp"
	"context"
	"slices"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/conflict"
	"github.com/backwell/horario/pkg/planner"
	"github.com/backwell/horario/pkg/schema"
)

// Store reads and writes the normalized catalog.
type Store interface {
	// CountCourses returns the number of stored courses.
	CountCourses(ctx context.Context) (int64, error)

	// SaveSection writes one section in a single transaction: its
	// subjects, instructors and rooms are created when missing, the
	// course is upserted by course key and slots are created when their
	// tuple is new. Nothing is written when an error is returned.
	SaveSection(ctx context.Context, sec catalog.Section) (SaveResult, error)

	// SaveInstructors creates reference records of instructors that are
	// missing. Sections without admissible rows still name instructors.
	SaveInstructors(ctx context.Context, ins []catalog.Instructor) error

	// SaveRun persists the summary of an import run.
	SaveRun(ctx context.Context, run *schema.ImportRun) error

	// Slots returns stored meetings that pass the filter, ordered by
	// day, time and course key.
	Slots(ctx context.Context, f SlotFilter) ([]SlotView, error)

	// Subjects returns names of all stored subjects in sorted order.
	Subjects(ctx context.Context) ([]string, error)
}

// SaveResult tells what SaveSection changed.
type SaveResult struct {
	CourseCreated bool
	SlotsCreated  int
	SlotsExisting int
}

// SlotFilter narrows the meetings returned by Store.Slots. Empty fields
// do not filter.
type SlotFilter struct {
	// Subject and Instructor match a substring of the name, ignoring
	// case and accents.
	Subject    string
	Instructor string

	// Room, Cycle and Session must match exactly.
	Room    string
	Cycle   string
	Session string

	// Subjects keeps only meetings of these exact subject names.
	Subjects []string
}

// SlotView is a stored meeting joined with its course, subject, room and
// instructor.
type SlotView struct {
	CourseKey   string
	ClassNumber string
	Subject     string
	Instructor  string
	Room        string
	Day         catalog.Weekday
	Start       catalog.Clock
	End         catalog.Clock
	Cycle       string
	Session     string
}

// Label names the meeting in reports: the subject followed by the
// instructor in parentheses.
func (v SlotView) Label() string {
	if v.Instructor == "" {
		return v.Subject
	}
	return v.Subject + " (" + v.Instructor + ")"
}

// ConflictSlot converts the view for the conflict detector.
func (v SlotView) ConflictSlot() conflict.Slot {
	return conflict.Slot{
		Day:        v.Day,
		Range:      conflict.Range{Start: v.Start, End: v.End},
		Label:      v.Label(),
		Room:       v.Room,
		Instructor: v.Instructor,
	}
}

// ConflictSlots converts views for the conflict detector.
func ConflictSlots(views []SlotView) []conflict.Slot {
	res := make([]conflict.Slot, len(views))
	for i, v := range views {
		res[i] = v.ConflictSlot()
	}
	return res
}

// PlanOptions groups views by course into planner options, sorted by
// subject and course key. The instructor of an option is the one of its
// first meeting.
func PlanOptions(views []SlotView) []planner.Option {
	idx := make(map[string]int)
	var res []planner.Option
	for _, v := range views {
		i, ok := idx[v.CourseKey]
		if !ok {
			i = len(res)
			idx[v.CourseKey] = i
			res = append(res, planner.Option{
				Subject:    v.Subject,
				CourseKey:  v.CourseKey,
				Instructor: v.Instructor,
			})
		}
		res[i].Slots = append(res[i].Slots, v.ConflictSlot())
	}

	slices.SortFunc(res, func(a, b planner.Option) int {
		if c := cmp.Compare(a.Subject, b.Subject); c != 0 {
			return c
		}
		return cmp.Compare(a.CourseKey, b.CourseKey)
	})
	return res
}

// SortViews orders views by day, start, end, course key and room.
func SortViews(views []SlotView) {
	slices.SortStableFunc(views, func(a, b SlotView) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.End, b.End),
			cmp.Compare(a.CourseKey, b.CourseKey),
			cmp.Compare(a.Room, b.Room),
		)
	})
}
