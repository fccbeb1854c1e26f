package ioreport

import (
	"fmt"
	"strings"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// FormatError is returned for an output format horario does not know.
func FormatError(format string) error {
	msg := "Unknown output format <em>%s</em>, use one of: %s"
	vars := []any{format, strings.Join(Formats, ", ")}
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown format %q", format),
	}
}

// UnsupportedFormatError is returned when a report cannot be rendered
// in a known format, for example plans as a calendar.
func UnsupportedFormatError(format, report string) error {
	msg := "Format <em>%s</em> is not available for %s"
	vars := []any{format, report}
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("format %q not supported for %s", format, report),
	}
}

func WriteError(format string, err error) error {
	msg := "Cannot write <em>%s</em> output"
	vars := []any{format}
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("write %s: %w", format, err),
	}
}
