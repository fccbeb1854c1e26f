package catalog

import (
	"strconv"
	"strings"
)

// Sentinel room names.
const (
	RoomOnline     = "En Línea"
	RoomUnassigned = "Sin Asignar"
)

// IsOnline reports whether a modality value means remote delivery.
// Matching ignores case, accents and spaces, so "EN LÍNEA", "En linea"
// and "Enlinea" all qualify. A blank modality means in person.
func IsOnline(modality string) bool {
	f := strings.ReplaceAll(Fold(modality), " ", "")
	return f == "enlinea" || f == "online"
}

// NormalizeRoom resolves the room a slot is held in. Online sections
// always go to RoomOnline, whatever the room column says. Otherwise a
// blank room becomes RoomUnassigned.
func NormalizeRoom(room, modality string) string {
	if IsOnline(modality) {
		return RoomOnline
	}
	room = strings.TrimSpace(room)
	if room == "" {
		return RoomUnassigned
	}
	return room
}

// ParseCount reads a non-negative integer cell such as a capacity.
// Spreadsheets often keep integers as floats ("30.0"). It returns 0 and
// false for blank or malformed values.
func ParseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}
