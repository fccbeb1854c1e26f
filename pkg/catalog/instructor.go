package catalog

import (
	"strings"
)

// Role of an instructor within a section.
type Role int

const (
	RoleNone Role = iota
	RoleTitular
	RoleAdjunto
)

// ParseRole recognizes "titular" and "adjunto" in any case.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "titular":
		return RoleTitular
	case "adjunto":
		return RoleAdjunto
	default:
		return RoleNone
	}
}

func (r Role) String() string {
	switch r {
	case RoleTitular:
		return "titular"
	case RoleAdjunto:
		return "adjunto"
	default:
		return ""
	}
}

// Instructor is an instructor reference extracted from a row.
type Instructor struct {
	// Key is the identity used for get-or-create.
	Key        string
	Name       string
	ExternalID string
}

// IsZero reports whether the reference is empty.
func (i Instructor) IsZero() bool {
	return i.Key == ""
}

// InstructorKeyFunc derives the identity of an instructor from the name
// and the external id found on a row.
type InstructorKeyFunc func(name, externalID string) string

// KeyByName identifies instructors by their name.
func KeyByName(name, _ string) string {
	return strings.TrimSpace(name)
}

// KeyByExternalID identifies instructors by the institution's id,
// falling back to the name when a row carries no id.
func KeyByExternalID(name, externalID string) string {
	if id := strings.TrimSpace(externalID); id != "" {
		return "id:" + id
	}
	return KeyByName(name, externalID)
}

// InstructorKey returns the key function for a strategy name as used in
// configuration ("name" or "external-id"). Unknown names fall back to
// KeyByName.
func InstructorKey(strategy string) InstructorKeyFunc {
	if strategy == "external-id" {
		return KeyByExternalID
	}
	return KeyByName
}

func rowInstructor(r Row, keyFn InstructorKeyFunc) Instructor {
	name := r.Get(ColInstructor)
	if name == "" {
		return Instructor{}
	}
	id := r.Get(ColInstructorID)
	return Instructor{Key: keyFn(name, id), Name: name, ExternalID: id}
}
