// Package schema provides database schema models of the normalized
// course catalog.
//
// Reference records and courses use UUID v5 primary keys derived from
// their natural keys, so creating the same record twice hits the same
// row.
package schema

import (
	"time"

	"github.com/gnames/gnuuid"
)

// Subject is a subject (materia) of the catalog.
type Subject struct {
	// ID is UUID v5 of the subject name.
	ID string `gorm:"primaryKey;size:36"`

	// Name of the subject, unique.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// CatalogNumber is the number of the subject in the catalog.
	CatalogNumber string `gorm:"size:50"`

	// Code is the subject code ("Materia" column).
	Code string `gorm:"size:50"`
}

// Instructor is a person who teaches sections.
type Instructor struct {
	// ID is UUID v5 of IdentityKey.
	ID string `gorm:"primaryKey;size:36"`

	// IdentityKey is the value instructors are told apart by. With the
	// default strategy it equals Name.
	IdentityKey string `gorm:"uniqueIndex;size:255;not null"`

	Name string `gorm:"index;size:255;not null"`

	// ExternalID is the institution's id of the instructor, first seen
	// value is kept.
	ExternalID string `gorm:"size:50"`
}

// Room is a place where meetings happen. Online and unassigned meetings
// use sentinel rooms.
type Room struct {
	ID       string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"uniqueIndex;size:255;not null"`
	Capacity *int
}

// Course is a course section, possibly merged from several class numbers.
type Course struct {
	// ID is UUID v5 of CourseKey.
	ID string `gorm:"primaryKey;size:36"`

	// CourseKey is the sorted list of combined class numbers, or the class
	// number of a section that is not combined.
	CourseKey string `gorm:"uniqueIndex;size:255;not null"`

	SubjectID string  `gorm:"size:36;not null;index"`
	Subject   Subject `gorm:"constraint:OnDelete:RESTRICT"`

	// InstructorID references the titular instructor.
	InstructorID *string     `gorm:"size:36;index"`
	Instructor   *Instructor `gorm:"foreignKey:InstructorID"`

	// AdjunctID references the adjunct instructor.
	AdjunctID *string     `gorm:"size:36;index"`
	Adjunct   *Instructor `gorm:"foreignKey:AdjunctID"`

	ClassNumber        string `gorm:"size:50"`
	CourseCode         string `gorm:"size:50"`
	Cycle              string `gorm:"size:20;index"`
	Session            string `gorm:"size:20;index"`
	ClassSection       string `gorm:"size:50"`
	AcademicGroup      string `gorm:"size:100"`
	AcademicOrg        string `gorm:"size:255"`
	Exchange           string `gorm:"size:50"`
	InterCampus        string `gorm:"size:50"`
	Officiality        string `gorm:"size:100"`
	AcademicPlan       string `gorm:"size:255"`
	Campus             string `gorm:"size:100"`
	AdminID            string `gorm:"size:50"`
	AdminName          string `gorm:"size:255"`
	CombinedSubject    string `gorm:"size:255"`
	CombinedClasses    string `gorm:"size:255"`
	CombinedCapacity   string `gorm:"size:20"`
	CatalogNumber      string `gorm:"size:50"`
	ClassName          string `gorm:"size:255"`
	Capacity           string `gorm:"size:20"`
	Enrollment         string `gorm:"size:20"`
	CombinedEnrollment string `gorm:"size:20"`
	StartDate          string `gorm:"size:30"`
	EndDate            string `gorm:"size:30"`
	ElectiveBlock      string `gorm:"size:100"`
	Language           string `gorm:"size:100"`
	Modality           string `gorm:"size:100"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Slot is one weekly meeting of a course.
type Slot struct {
	// ID is UUID v5 of the uniqueness tuple.
	ID string `gorm:"primaryKey;size:36"`

	CourseID string `gorm:"size:36;not null;uniqueIndex:idx_slot_tuple,priority:1"`
	Course   Course `gorm:"constraint:OnDelete:CASCADE"`

	// Day is the Spanish weekday name.
	Day string `gorm:"size:10;not null;uniqueIndex:idx_slot_tuple,priority:2"`

	// StartTime and EndTime are HH:MM:SS.
	StartTime string `gorm:"size:8;not null;uniqueIndex:idx_slot_tuple,priority:3"`
	EndTime   string `gorm:"size:8;not null;uniqueIndex:idx_slot_tuple,priority:4"`

	RoomID string `gorm:"size:36;not null;uniqueIndex:idx_slot_tuple,priority:5"`
	Room   Room

	// InstructorID references the instructor of this particular meeting.
	InstructorID *string     `gorm:"size:36;uniqueIndex:idx_slot_tuple,priority:6"`
	Instructor   *Instructor `gorm:"foreignKey:InstructorID"`
}

// ImportRun keeps the summary of one importer run.
type ImportRun struct {
	ID             string `gorm:"primaryKey;size:36"`
	Source         string `gorm:"size:500"`
	Mode           string `gorm:"size:20"`
	InstructorKey  string `gorm:"size:20"`
	Rows           int
	Groups         int
	CoursesCreated int
	CoursesUpdated int
	SlotsCreated   int
	SlotsExisting  int
	RowsSkipped    int
	SlotsSkipped   int
	Skipped        bool
	StartedAt      time.Time
	FinishedAt     time.Time
}

// SubjectID returns the primary key of a subject.
func SubjectID(name string) string {
	return gnuuid.New("subject:" + name).String()
}

// InstructorID returns the primary key of an instructor.
func InstructorID(identityKey string) string {
	return gnuuid.New("instructor:" + identityKey).String()
}

// RoomID returns the primary key of a room.
func RoomID(name string) string {
	return gnuuid.New("room:" + name).String()
}

// CourseID returns the primary key of a course.
func CourseID(courseKey string) string {
	return gnuuid.New("course:" + courseKey).String()
}

// SlotID returns the primary key of a slot from its uniqueness tuple.
func SlotID(tuple string) string {
	return gnuuid.New("slot:" + tuple).String()
}
