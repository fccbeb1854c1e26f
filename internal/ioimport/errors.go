package ioimport

import (
	"fmt"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// CancelledError is returned when the context is cancelled between
// sections. Sections saved before that stay in the database.
func CancelledError(err error) error {
	msg := "Import was cancelled, courses saved so far are kept"

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}

// AllGroupsFailedError is returned when no section could be saved.
func AllGroupsFailedError(count int) error {
	msg := `None of <em>%d</em> courses could be saved

Check the log file for the database errors`

	vars := []any{count}

	plural := "s"
	if count == 1 {
		plural = ""
	}

	return &gn.Error{
		Code: errcode.ImportStoreError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d course%s failed to save", count, plural),
	}
}
