package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBTableCheckError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Import errors
	ImportReadError
	ImportShapeError
	ImportUnknownFormatError
	ImportSheetNotFoundError
	ImportStoreError
	ImportCancelledError

	// Store errors
	StoreQueryError

	// Report errors
	ReportFormatError
	ReportWriteError

	// Planner errors
	PlanNoSubjectsError
	PlanUnknownSubjectError
)
