// Package horario holds build-time information about the application.
package horario

var (
	// Version of the horario application.
	Version = "v0.1.0"
	// Build timestamp or commit, set with ldflags.
	Build = "n/a"
)
