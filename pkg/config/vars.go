package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "horario"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/horario by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for local data, such as the
// SQLite database file.
// Returns ~/.local/share/horario by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/horario/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/horario/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DBFilePath returns the SQLite database file used when
// Database.Path is not set.
func DBFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}

// SQLitePath resolves the SQLite file for the configuration.
func (c *Config) SQLitePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return DBFilePath(c.HomeDir)
}
