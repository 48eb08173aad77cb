// Package logging builds the structured loggers used by voicemail lines.
//
// Loggers are plain *slog.Logger values. Level and format names are
// case-insensitive; unknown levels fall back to INFO and unknown formats to
// text. The auto format writes text to a terminal and JSON anywhere else.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/term"
)

// Log levels.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level and format.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	if useJSON(w, format) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Open returns a logger appending to the file at path, creating it and its
// parent directories if needed. The returned close function syncs and closes
// the file.
func Open(path, level, format string) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	closeFn := func() error {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("sync log file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
		return nil
	}
	return New(f, level, format), closeFn, nil
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel normalizes a level name. Returns LevelInfo if the name is not
// recognized.
func ParseLevel(level string) string {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return LevelDebug
	case LevelWarn:
		return LevelWarn
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// ValidLevels returns the accepted level names.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{FormatAuto, FormatText, FormatJSON}
}

func useJSON(w io.Writer, format string) bool {
	switch strings.ToLower(format) {
	case FormatJSON:
		return true
	case FormatAuto:
		f, ok := w.(interface{ Fd() uintptr })
		return !ok || !term.IsTerminal(f.Fd())
	default:
		return false
	}
}

func slogLevel(level string) slog.Level {
	switch ParseLevel(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
