package iostore

import (
	"fmt"

	"github.com/backwell/horario/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when the store is used before the
// operator connects.
func NotConnectedError() error {
	msg := "Store operation attempted without database connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// SaveSectionError is returned when the transaction of a section is
// rolled back.
func SaveSectionError(courseKey string, err error) error {
	msg := "Cannot save course <em>%s</em>, its changes are rolled back"
	vars := []any{courseKey}
	return &gn.Error{
		Code: errcode.ImportStoreError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("save course %s: %w", courseKey, err),
	}
}

// QueryError is returned when reading from the store fails.
func QueryError(op string, err error) error {
	msg := `Cannot %s from the database

Run <em>horario migrate</em> if the schema is outdated`
	vars := []any{op}
	return &gn.Error{
		Code: errcode.StoreQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", op, err),
	}
}
