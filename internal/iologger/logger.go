// Package iologger installs the global slog logger of horario.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/backwell/horario/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "horario.log"

// Init sets the default slog logger according to cfg. With the "file"
// destination the log file in logDir is truncated on every start.
func Init(logDir string, cfg config.LogConfig) error {
	w, err := writer(logDir, cfg.Destination)
	if err != nil {
		return err
	}
	slog.SetDefault(New(w, cfg))
	return nil
}

// New creates a logger writing to w with the format and level of cfg.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func writer(logDir, destination string) (io.Writer, error) {
	switch destination {
	case "stdout":
		return os.Stdout, nil
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		f, err := os.Create(logPath)
		if err != nil {
			return nil, CreateLogFileError(logPath, err)
		}
		return f, nil
	default:
		return os.Stderr, nil
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
