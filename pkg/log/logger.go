package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or
// stderr) at the specified level. Stdout is left to the command's own output.
//
// path: Log file path. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func Init(path string, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := closeFile(); err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	jsonOut := !term.IsTerminal(int(os.Stderr.Fd()))
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logFile = f
		w = f
		jsonOut = false
	}

	slog.SetDefault(slog.New(newHandler(w, parseLevel(level), jsonOut)))
	return nil
}

// Close releases the log file opened by Init, if any, and points the default
// logger back at stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	slog.SetDefault(slog.New(newHandler(os.Stderr, slog.LevelInfo, !term.IsTerminal(int(os.Stderr.Fd())))))
	return closeFile()
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// newHandler returns a text handler, or a JSON handler when the output is
// consumed by a pipe rather than a person.
func newHandler(w io.Writer, lvl slog.Level, jsonOut bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: lvl,
	}
	if jsonOut {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
