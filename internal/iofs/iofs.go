// Package iofs prepares the file system for horario: application
// directories, the default config file and report output files.
package iofs

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"

	"github.com/backwell/horario/pkg/config"
)

// ConfigYAML is the documented config.yaml written on the first run.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, data and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml unless a config file
// already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Output opens the destination of a report. An empty path or "-" means
// STDOUT, which is never closed. Parent directories of a file are created.
func Output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	if err := touchDir(filepath.Dir(path)); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, WriteFileError(path, err)
	}
	return f, nil
}
