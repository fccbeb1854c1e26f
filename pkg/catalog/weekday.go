package catalog

import (
	"strings"
)

// Weekday enumerates the seven weekday columns of the export, Monday
// first.
type Weekday int

const (
	Lunes Weekday = iota
	Martes
	Miercoles
	Jueves
	Viernes
	Sabado
	Domingo
)

var weekdayNames = [...]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// Weekdays lists all days in calendar order.
var Weekdays = []Weekday{
	Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo,
}

// String returns the Spanish name of the day, which is also the label of
// its column in the export.
func (d Weekday) String() string {
	if d < Lunes || d > Domingo {
		return "Desconocido"
	}
	return weekdayNames[d]
}

// Column returns the header label of the day marker column.
func (d Weekday) Column() string {
	return d.String()
}

// ParseWeekday accepts day names with or without accents, in any case.
func ParseWeekday(s string) (Weekday, bool) {
	s = Fold(s)
	for _, d := range Weekdays {
		if Fold(d.String()) == s {
			return d, true
		}
	}
	return 0, false
}

// IsMarked reports whether a weekday cell carries the "X" sentinel.
func IsMarked(cell string) bool {
	return strings.EqualFold(strings.TrimSpace(cell), "x")
}
