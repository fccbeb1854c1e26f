package catalog

import (
	"fmt"
	"strings"
)

// Fields are the descriptive attributes of a section, copied verbatim
// from the export.
type Fields struct {
	ClassNumber        string `json:"classNumber"        yaml:"class_number"`
	CourseID           string `json:"courseId"           yaml:"course_id"`
	Cycle              string `json:"cycle"              yaml:"cycle"`
	Session            string `json:"session"            yaml:"session"`
	ClassSection       string `json:"classSection"       yaml:"class_section"`
	AcademicGroup      string `json:"academicGroup"      yaml:"academic_group"`
	AcademicOrg        string `json:"academicOrg"        yaml:"academic_org"`
	Exchange           string `json:"exchange"           yaml:"exchange"`
	InterCampus        string `json:"interCampus"        yaml:"inter_campus"`
	Officiality        string `json:"officiality"        yaml:"officiality"`
	AcademicPlan       string `json:"academicPlan"       yaml:"academic_plan"`
	Campus             string `json:"campus"             yaml:"campus"`
	AdminID            string `json:"adminId"            yaml:"admin_id"`
	AdminName          string `json:"adminName"          yaml:"admin_name"`
	CombinedSubject    string `json:"combinedSubject"    yaml:"combined_subject"`
	CombinedClasses    string `json:"combinedClasses"    yaml:"combined_classes"`
	CombinedCapacity   string `json:"combinedCapacity"   yaml:"combined_capacity"`
	CatalogNumber      string `json:"catalogNumber"      yaml:"catalog_number"`
	ClassName          string `json:"className"          yaml:"class_name"`
	Capacity           string `json:"capacity"           yaml:"capacity"`
	Enrollment         string `json:"enrollment"         yaml:"enrollment"`
	CombinedEnrollment string `json:"combinedEnrollment" yaml:"combined_enrollment"`
	StartDate          string `json:"startDate"          yaml:"start_date"`
	EndDate            string `json:"endDate"            yaml:"end_date"`
	ElectiveBlock      string `json:"electiveBlock"      yaml:"elective_block"`
	Language           string `json:"language"           yaml:"language"`
	Modality           string `json:"modality"           yaml:"modality"`
}

var fieldColumns = []struct {
	col string
	ptr func(*Fields) *string
}{
	{ColClassNumber, func(f *Fields) *string { return &f.ClassNumber }},
	{ColCourseID, func(f *Fields) *string { return &f.CourseID }},
	{ColCycle, func(f *Fields) *string { return &f.Cycle }},
	{ColSession, func(f *Fields) *string { return &f.Session }},
	{ColClassSection, func(f *Fields) *string { return &f.ClassSection }},
	{ColAcademicGroup, func(f *Fields) *string { return &f.AcademicGroup }},
	{ColAcademicOrg, func(f *Fields) *string { return &f.AcademicOrg }},
	{ColExchange, func(f *Fields) *string { return &f.Exchange }},
	{ColInterCampus, func(f *Fields) *string { return &f.InterCampus }},
	{ColOfficiality, func(f *Fields) *string { return &f.Officiality }},
	{ColAcademicPlan, func(f *Fields) *string { return &f.AcademicPlan }},
	{ColCampus, func(f *Fields) *string { return &f.Campus }},
	{ColAdminID, func(f *Fields) *string { return &f.AdminID }},
	{ColAdminName, func(f *Fields) *string { return &f.AdminName }},
	{ColCombinedSubject, func(f *Fields) *string { return &f.CombinedSubject }},
	{ColCombinedClasses, func(f *Fields) *string { return &f.CombinedClasses }},
	{ColCombinedCapacity, func(f *Fields) *string { return &f.CombinedCapacity }},
	{ColCatalogNumber, func(f *Fields) *string { return &f.CatalogNumber }},
	{ColSubject, func(f *Fields) *string { return &f.ClassName }},
	{ColCapacity, func(f *Fields) *string { return &f.Capacity }},
	{ColEnrollment, func(f *Fields) *string { return &f.Enrollment }},
	{ColCombinedEnrolment, func(f *Fields) *string { return &f.CombinedEnrollment }},
	{ColStartDate, func(f *Fields) *string { return &f.StartDate }},
	{ColEndDate, func(f *Fields) *string { return &f.EndDate }},
	{ColElectiveBlock, func(f *Fields) *string { return &f.ElectiveBlock }},
	{ColLanguage, func(f *Fields) *string { return &f.Language }},
	{ColModality, func(f *Fields) *string { return &f.Modality }},
}

// Merge fills every empty field from the row. Fields that already hold
// a value are left alone.
func (f Fields) Merge(r Row) Fields {
	for _, fc := range fieldColumns {
		p := fc.ptr(&f)
		if *p == "" {
			*p = r.Get(fc.col)
		}
	}
	return f
}

// Subject is a subject reference extracted from a row.
type Subject struct {
	Name          string
	CatalogNumber string
	Code          string
}

// Room is a room reference. Capacity is zero when unknown.
type Room struct {
	Name     string
	Capacity int
}

// Slot is one weekly meeting of a section.
type Slot struct {
	Day        Weekday
	Start      Clock
	End        Clock
	Room       Room
	Instructor Instructor
}

// Tuple is the identity of a slot within the store.
func (s Slot) Tuple(courseKey string) string {
	return strings.Join([]string{
		courseKey, s.Day.String(), s.Start.SQL(), s.End.SQL(),
		s.Room.Name, s.Instructor.Key,
	}, "|")
}

// Section is the reconciled view of one group of rows.
type Section struct {
	Key string
	// Subject is the subject of the section, taken from the first
	// admissible row.
	Subject Subject
	// Subjects lists every distinct subject named by admissible rows.
	Subjects []Subject
	Fields   Fields
	// Primary is the titular instructor, Secondary the adjunct one.
	Primary   Instructor
	Secondary Instructor
	// Instructors lists every named instructor of the group, including
	// those on rows that were skipped for lacking a subject.
	Instructors []Instructor
	Slots       []Slot
	Issues      []Issue
	// Admissible is the number of rows that contributed to the section.
	Admissible int
}

// IsValid reports whether at least one row made it through admission,
// so the section has a subject and can be stored.
func (s Section) IsValid() bool {
	return s.Admissible > 0
}

// Reconcile folds a group of rows into one Section. Every descriptive field
// takes the first non-empty value in row order, independently of the
// other fields. The first titular and the first adjunct win their roles.
func Reconcile(g Group, keyFn InstructorKeyFunc) Section {
	if keyFn == nil {
		keyFn = KeyByName
	}
	res := Section{Key: g.Key}
	seenIns := make(map[string]struct{})
	seenSubj := make(map[string]struct{})
	seenSlot := make(map[string]struct{})

	for _, r := range g.Rows {
		ins := rowInstructor(r, keyFn)
		if ins.IsZero() {
			res.Issues = append(res.Issues,
				Issue{Line: r.Line, Key: g.Key, Reason: ReasonNoInstructor})
			continue
		}
		if _, ok := seenIns[ins.Key]; !ok {
			seenIns[ins.Key] = struct{}{}
			res.Instructors = append(res.Instructors, ins)
		}

		name := r.Get(ColSubject)
		if name == "" {
			res.Issues = append(res.Issues,
				Issue{Line: r.Line, Key: g.Key, Reason: ReasonNoSubject})
			continue
		}
		if _, ok := seenSubj[name]; !ok {
			seenSubj[name] = struct{}{}
			res.Subjects = append(res.Subjects, Subject{
				Name:          name,
				CatalogNumber: r.Get(ColCatalogNumber),
				Code:          r.Get(ColSubjectCode),
			})
		}

		res.Admissible++
		res.Fields = res.Fields.Merge(r)

		switch ParseRole(r.Get(ColInstructorRole)) {
		case RoleTitular:
			if res.Primary.IsZero() {
				res.Primary = ins
			}
		case RoleAdjunto:
			if res.Secondary.IsZero() {
				res.Secondary = ins
			}
		}

		slots, issues := RowSlots(r, ins)
		for i := range issues {
			issues[i].Key = g.Key
		}
		res.Issues = append(res.Issues, issues...)
		for _, s := range slots {
			t := s.Tuple(g.Key)
			if _, ok := seenSlot[t]; ok {
				continue
			}
			seenSlot[t] = struct{}{}
			res.Slots = append(res.Slots, s)
		}
	}

	if len(res.Subjects) > 0 {
		res.Subject = res.Subjects[0]
	}
	return res
}

// RowSlots extracts the weekly meetings described by a row: one slot per
// weekday column marked with "X". When the times do not parse, or the
// start is not before the end, the row yields no slots and an issue.
func RowSlots(r Row, ins Instructor) ([]Slot, []Issue) {
	var days []Weekday
	for _, d := range Weekdays {
		if IsMarked(r.Get(d.Column())) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, nil
	}

	start, err := ParseClock(r.Get(ColStartTime))
	if err != nil {
		return nil, []Issue{slotIssue(r, ReasonBadTime, err.Error())}
	}
	end, err := ParseClock(r.Get(ColEndTime))
	if err != nil {
		return nil, []Issue{slotIssue(r, ReasonBadTime, err.Error())}
	}
	if start >= end {
		detail := fmt.Sprintf("%s - %s", start, end)
		return nil, []Issue{slotIssue(r, ReasonEmptyRange, detail)}
	}

	room := Room{Name: NormalizeRoom(r.Get(ColRoom), r.Get(ColModality))}
	if room.Name != RoomOnline && room.Name != RoomUnassigned {
		room.Capacity, _ = ParseCount(r.Get(ColRoomCapacity))
	}

	res := make([]Slot, len(days))
	for i, d := range days {
		res[i] = Slot{
			Day:        d,
			Start:      start,
			End:        end,
			Room:       room,
			Instructor: ins,
		}
	}
	return res, nil
}

func slotIssue(r Row, reason, detail string) Issue {
	return Issue{Line: r.Line, Reason: reason, SlotOnly: true, Detail: detail}
}
