// Package catalog turns rows of a course catalog export into reconciled
// sections. It is pure: it does no I/O and keeps no state between calls.
package catalog

// Column labels of the catalog export. Labels are matched after trimming
// and collapsing inner whitespace.
const (
	ColInstructor     = "Profesor"
	ColInstructorID   = "Id profesor"
	ColInstructorRole = "Rol Profesor"

	ColSubject       = "Clase"
	ColSubjectCode   = "Materia"
	ColCatalogNumber = "No de catálogo"

	ColCombinedClasses = "Clases Comb."
	ColClassNumber     = "No de clase"

	ColCourseID          = "Id del Curso"
	ColCycle             = "Ciclo"
	ColSession           = "Sesión"
	ColClassSection      = "Sección Clase"
	ColAcademicGroup     = "Grupo académico"
	ColAcademicOrg       = "Organización académica"
	ColExchange          = "Intercambio"
	ColInterCampus       = "Inter plantel"
	ColOfficiality       = "Oficialidad de la materia"
	ColAcademicPlan      = "Plan Académico"
	ColCampus            = "Sede"
	ColAdminID           = "Id Administrador de curso"
	ColAdminName         = "Nombre de Administrador de curso"
	ColCombinedSubject   = "Mat. Comb."
	ColCombinedCapacity  = "Capacidad Inscripción Combinación"
	ColCapacity          = "Capacidad Inscripción"
	ColEnrollment        = "Total inscripciones"
	ColCombinedEnrolment = "Total de inscripciones materia combinada"
	ColStartDate         = "Fecha inicial"
	ColEndDate           = "Fecha final"
	ColElectiveBlock     = "Bloque optativo"
	ColLanguage          = "Idioma en que se imparte la materia"
	ColModality          = "Modalidad de la clase"

	ColStartTime    = "Hora inicio"
	ColEndTime      = "Hora fin"
	ColRoom         = "Salón"
	ColRoomCapacity = "Capacidad del salón"
)

// RequiredColumns must be present in the header, otherwise the file does
// not look like a catalog export at all.
var RequiredColumns = []string{
	ColClassNumber,
	ColCombinedClasses,
	ColInstructor,
	ColSubject,
	ColStartTime,
	ColEndTime,
}
