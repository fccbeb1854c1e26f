package iostore

import (
	"context"
	"fmt"
	"strings"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/schema"
	"github.com/backwell/horario/pkg/store"
)

type slotRow struct {
	CourseKey   string
	ClassNumber string
	Subject     string
	Instructor  string
	Room        string
	Day         string
	StartTime   string
	EndTime     string
	Cycle       string
	Session     string
}

// Slots returns stored meetings that pass the filter. Exact filters run
// in SQL. Substring filters compare folded names in Go, so that they
// ignore accents the same way on every backend.
func (s *storeGORM) Slots(
	ctx context.Context,
	f store.SlotFilter,
) ([]store.SlotView, error) {
	gdb, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	q := gdb.Table("slots").
		Select(`courses.course_key, courses.class_number,
			subjects.name AS subject,
			COALESCE(instructors.name, '') AS instructor,
			rooms.name AS room, slots.day, slots.start_time, slots.end_time,
			courses.cycle, courses.session`).
		Joins("JOIN courses ON courses.id = slots.course_id").
		Joins("JOIN subjects ON subjects.id = courses.subject_id").
		Joins("JOIN rooms ON rooms.id = slots.room_id").
		Joins("LEFT JOIN instructors ON instructors.id = slots.instructor_id")

	if f.Room != "" {
		q = q.Where("rooms.name = ?", f.Room)
	}
	if f.Cycle != "" {
		q = q.Where("courses.cycle = ?", f.Cycle)
	}
	if f.Session != "" {
		q = q.Where("courses.session = ?", f.Session)
	}
	if len(f.Subjects) > 0 {
		q = q.Where("subjects.name IN ?", f.Subjects)
	}

	var rows []slotRow
	if err = q.Scan(&rows).Error; err != nil {
		return nil, QueryError("load slots", err)
	}

	subj := catalog.Fold(f.Subject)
	ins := catalog.Fold(f.Instructor)
	res := make([]store.SlotView, 0, len(rows))
	for _, r := range rows {
		if subj != "" && !strings.Contains(catalog.Fold(r.Subject), subj) {
			continue
		}
		if ins != "" && !strings.Contains(catalog.Fold(r.Instructor), ins) {
			continue
		}
		v, err := r.view()
		if err != nil {
			return nil, QueryError("load slots", err)
		}
		res = append(res, v)
	}

	store.SortViews(res)
	return res, nil
}

func (r slotRow) view() (store.SlotView, error) {
	day, ok := catalog.ParseWeekday(r.Day)
	if !ok {
		return store.SlotView{}, fmt.Errorf("course %s: unknown day %q",
			r.CourseKey, r.Day)
	}
	start, err := catalog.ParseClock(r.StartTime)
	if err != nil {
		return store.SlotView{}, fmt.Errorf("course %s: %w", r.CourseKey, err)
	}
	end, err := catalog.ParseClock(r.EndTime)
	if err != nil {
		return store.SlotView{}, fmt.Errorf("course %s: %w", r.CourseKey, err)
	}
	return store.SlotView{
		CourseKey:   r.CourseKey,
		ClassNumber: r.ClassNumber,
		Subject:     r.Subject,
		Instructor:  r.Instructor,
		Room:        r.Room,
		Day:         day,
		Start:       start,
		End:         end,
		Cycle:       r.Cycle,
		Session:     r.Session,
	}, nil
}

// Subjects returns names of all stored subjects.
func (s *storeGORM) Subjects(ctx context.Context) ([]string, error) {
	gdb, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	var res []string
	err = gdb.Model(&schema.Subject{}).Order("name").Pluck("name", &res).Error
	if err != nil {
		return nil, QueryError("load subjects", err)
	}
	return res, nil
}
