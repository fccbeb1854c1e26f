package iotable

import (
	"fmt"
	"strings"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError is returned when the file cannot be opened or parsed.
func ReadError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ImportReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// UnknownFormatError is returned for extensions other than .xlsx and
// .csv.
func UnknownFormatError(path, ext string) error {
	msg := `File <em>%s</em> has unsupported extension <em>%s</em>

Export the catalog as <em>.xlsx</em> or <em>.csv</em>`
	vars := []any{path, ext}
	return &gn.Error{
		Code: errcode.ImportUnknownFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported file extension %q", ext),
	}
}

// SheetNotFoundError is returned when the requested worksheet is absent.
func SheetNotFoundError(path, sheet string, sheets []string) error {
	msg := `Worksheet <em>%s</em> is not found in <em>%s</em>

Available worksheets: %s`
	list := strings.Join(sheets, ", ")
	vars := []any{sheet, path, list}
	return &gn.Error{
		Code: errcode.ImportSheetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sheet %q not found among [%s]", sheet, list),
	}
}

// HeaderRowError is returned when the file is shorter than the header
// offset.
func HeaderRowError(path string, headerRow, lines int) error {
	msg := `File <em>%s</em> has %d lines, header row %d is not there

Use <em>--header-row</em> to set the zero-based index of the header`
	vars := []any{path, lines, headerRow}
	return &gn.Error{
		Code: errcode.ImportShapeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("header row %d is out of range of %d lines",
			headerRow, lines),
	}
}

// MissingColumnsError is returned when required columns are absent from
// the header.
func MissingColumnsError(path string, headerRow int, missing []string) error {
	msg := `File <em>%s</em> does not look like a catalog export

Required columns are missing from header row %d: <em>%s</em>`
	list := strings.Join(missing, ", ")
	vars := []any{path, headerRow, list}
	return &gn.Error{
		Code: errcode.ImportShapeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing required columns: %s", list),
	}
}
