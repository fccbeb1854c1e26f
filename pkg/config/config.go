// Package config provides configuration management for horario.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode, path
//   - Import: sheet, header_row, mode, instructor_key
//   - Report: format
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.File (per-command argument)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use HORARIO_ prefix with underscores for nesting:
//
//	HORARIO_DATABASE_DRIVER=sqlite
//	HORARIO_DATABASE_HOST=localhost
//	HORARIO_IMPORT_MODE=upsert
//	HORARIO_LOG_LEVEL=info
package config

// Config represents the complete horario configuration.
type Config struct {
	// Database contains connection settings for the normalized store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings of the spreadsheet importer.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	// Report contains settings for timetable and conflict output.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the normalized store.
type DatabaseConfig struct {
	// Driver selects the storage backend.
	// Valid values: "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. When empty, the file is placed
	// into the data directory (see DBFilePath).
	Path string `mapstructure:"path" yaml:"path"`
}

// ImportConfig contains settings of the importer.
type ImportConfig struct {
	// File is the spreadsheet to import (.xlsx or .csv).
	// Runtime-only field.
	File string `mapstructure:"file" yaml:"file"`

	// Sheet is the name of the worksheet to read. Empty means the
	// first sheet of the workbook.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// HeaderRow is the zero-based index of the header row. Exports of
	// the university catalog carry nine lines of preamble before it.
	HeaderRow int `mapstructure:"header_row" yaml:"header_row"`

	// Mode is "upsert" (default) or "insert-only". In insert-only mode
	// the import is skipped when courses already exist.
	Mode string `mapstructure:"mode" yaml:"mode"`

	// InstructorKey selects how instructors are identified:
	// "name" (default) or "external-id".
	InstructorKey string `mapstructure:"instructor_key" yaml:"instructor_key"`
}

// ReportConfig contains presentation settings.
type ReportConfig struct {
	// Format is one of "table", "json", "yaml", "csv", "xlsx", "ics".
	Format string `mapstructure:"format" yaml:"format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// Import modes.
const (
	ModeUpsert     = "upsert"
	ModeInsertOnly = "insert-only"
)

// Instructor identity strategies.
const (
	InstructorKeyName       = "name"
	InstructorKeyExternalID = "external-id"
)

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "horario",
			SSLMode:  "disable",
		},
		Import: ImportConfig{
			HeaderRow:     9,
			Mode:          ModeUpsert,
			InstructorKey: InstructorKeyName,
		},
		Report: ReportConfig{
			Format: "table",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
