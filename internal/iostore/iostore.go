// Package iostore implements store.Store on top of GORM. It works the
// same over PostgreSQL and SQLite.
package iostore

import (
	"context"
	"log/slog"

	"github.com/backwell/horario/pkg/catalog"
	"github.com/backwell/horario/pkg/db"
	"github.com/backwell/horario/pkg/schema"
	"github.com/backwell/horario/pkg/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type storeGORM struct {
	operator db.Operator
}

// New creates a store over a connected operator.
func New(op db.Operator) store.Store {
	return &storeGORM{operator: op}
}

func (s *storeGORM) db(ctx context.Context) (*gorm.DB, error) {
	gdb := s.operator.GORM()
	if gdb == nil {
		return nil, NotConnectedError()
	}
	return gdb.WithContext(ctx), nil
}

// CountCourses returns the number of stored courses.
func (s *storeGORM) CountCourses(ctx context.Context) (int64, error) {
	gdb, err := s.db(ctx)
	if err != nil {
		return 0, err
	}

	var res int64
	if err = gdb.Model(&schema.Course{}).Count(&res).Error; err != nil {
		return 0, QueryError("count courses", err)
	}
	return res, nil
}

// SaveRun persists the summary of an import run.
func (s *storeGORM) SaveRun(ctx context.Context, run *schema.ImportRun) error {
	gdb, err := s.db(ctx)
	if err != nil {
		return err
	}
	if err = gdb.Create(run).Error; err != nil {
		return QueryError("save import run", err)
	}
	return nil
}

// SaveSection writes a section in one transaction.
func (s *storeGORM) SaveSection(
	ctx context.Context,
	sec catalog.Section,
) (store.SaveResult, error) {
	var res store.SaveResult
	gdb, err := s.db(ctx)
	if err != nil {
		return res, err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = saveSection(tx, sec)
		return err
	})
	if err != nil {
		return store.SaveResult{}, SaveSectionError(sec.Key, err)
	}

	slog.Debug("Section saved",
		"course_key", sec.Key,
		"created", res.CourseCreated,
		"slots_created", res.SlotsCreated,
		"slots_existing", res.SlotsExisting,
	)
	return res, nil
}

// SaveInstructors creates missing instructors in one transaction.
func (s *storeGORM) SaveInstructors(
	ctx context.Context,
	ins []catalog.Instructor,
) error {
	if len(ins) == 0 {
		return nil
	}
	gdb, err := s.db(ctx)
	if err != nil {
		return err
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		return saveInstructors(tx, ins)
	})
	if err != nil {
		return QueryError("save instructors", err)
	}
	return nil
}

func saveInstructors(tx *gorm.DB, ins []catalog.Instructor) error {
	for _, v := range ins {
		rec := schema.Instructor{
			ID:          schema.InstructorID(v.Key),
			IdentityKey: v.Key,
			Name:        v.Name,
			ExternalID:  v.ExternalID,
		}
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func saveSection(tx *gorm.DB, sec catalog.Section) (store.SaveResult, error) {
	var res store.SaveResult
	doNothing := clause.OnConflict{DoNothing: true}

	for _, subj := range sec.Subjects {
		rec := schema.Subject{
			ID:            schema.SubjectID(subj.Name),
			Name:          subj.Name,
			CatalogNumber: subj.CatalogNumber,
			Code:          subj.Code,
		}
		if err := tx.Clauses(doNothing).Create(&rec).Error; err != nil {
			return res, err
		}
	}

	if err := saveInstructors(tx, sec.Instructors); err != nil {
		return res, err
	}

	seenRoom := make(map[string]struct{})
	for _, sl := range sec.Slots {
		if _, ok := seenRoom[sl.Room.Name]; ok {
			continue
		}
		seenRoom[sl.Room.Name] = struct{}{}
		rec := schema.Room{ID: schema.RoomID(sl.Room.Name), Name: sl.Room.Name}
		if sl.Room.Capacity > 0 {
			capacity := sl.Room.Capacity
			rec.Capacity = &capacity
		}
		if err := tx.Clauses(doNothing).Create(&rec).Error; err != nil {
			return res, err
		}
	}

	course := courseRecord(sec)
	var n int64
	err := tx.Model(&schema.Course{}).Where("id = ?", course.ID).Count(&n).Error
	if err != nil {
		return res, err
	}
	res.CourseCreated = n == 0

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Omit(clause.Associations).Create(&course).Error
	if err != nil {
		return res, err
	}

	for _, sl := range sec.Slots {
		rec := slotRecord(course.ID, sec.Key, sl)
		q := tx.Clauses(doNothing).Omit(clause.Associations).Create(&rec)
		if q.Error != nil {
			return res, q.Error
		}
		if q.RowsAffected == 0 {
			res.SlotsExisting++
		} else {
			res.SlotsCreated++
		}
	}

	return res, nil
}

func courseRecord(sec catalog.Section) schema.Course {
	f := sec.Fields
	res := schema.Course{
		ID:                 schema.CourseID(sec.Key),
		CourseKey:          sec.Key,
		SubjectID:          schema.SubjectID(sec.Subject.Name),
		ClassNumber:        f.ClassNumber,
		CourseCode:         f.CourseID,
		Cycle:              f.Cycle,
		Session:            f.Session,
		ClassSection:       f.ClassSection,
		AcademicGroup:      f.AcademicGroup,
		AcademicOrg:        f.AcademicOrg,
		Exchange:           f.Exchange,
		InterCampus:        f.InterCampus,
		Officiality:        f.Officiality,
		AcademicPlan:       f.AcademicPlan,
		Campus:             f.Campus,
		AdminID:            f.AdminID,
		AdminName:          f.AdminName,
		CombinedSubject:    f.CombinedSubject,
		CombinedClasses:    f.CombinedClasses,
		CombinedCapacity:   f.CombinedCapacity,
		CatalogNumber:      f.CatalogNumber,
		ClassName:          f.ClassName,
		Capacity:           f.Capacity,
		Enrollment:         f.Enrollment,
		CombinedEnrollment: f.CombinedEnrollment,
		StartDate:          f.StartDate,
		EndDate:            f.EndDate,
		ElectiveBlock:      f.ElectiveBlock,
		Language:           f.Language,
		Modality:           f.Modality,
	}
	if !sec.Primary.IsZero() {
		id := schema.InstructorID(sec.Primary.Key)
		res.InstructorID = &id
	}
	if !sec.Secondary.IsZero() {
		id := schema.InstructorID(sec.Secondary.Key)
		res.AdjunctID = &id
	}
	return res
}

func slotRecord(courseID, courseKey string, sl catalog.Slot) schema.Slot {
	res := schema.Slot{
		ID:        schema.SlotID(sl.Tuple(courseKey)),
		CourseID:  courseID,
		Day:       sl.Day.String(),
		StartTime: sl.Start.SQL(),
		EndTime:   sl.End.SQL(),
		RoomID:    schema.RoomID(sl.Room.Name),
	}
	if !sl.Instructor.IsZero() {
		id := schema.InstructorID(sl.Instructor.Key)
		res.InstructorID = &id
	}
	return res
}
