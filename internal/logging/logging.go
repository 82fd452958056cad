// Package logging configures zerolog for the application.
//
// The terminal belongs to the TUI, so log output always goes to a file.
// When the file cannot be opened the logger is disabled rather than
// writing over the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"
	// FormatConsole writes human-readable lines without color.
	FormatConsole = "console"

	appDir      = "amphibians"
	logFileName = "amphibians.log"
)

// Config controls logger construction.
type Config struct {
	Level  string // zerolog level name; invalid or empty means info
	Format string // FormatJSON or FormatConsole
	File   string // empty means DefaultFile()
	Debug  bool   // forces debug level and adds caller info
}

// Result is a constructed logger plus the file backing it.
type Result struct {
	Logger   zerolog.Logger
	FilePath string
	file     *os.File
}

// Close releases the log file, if any.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// DefaultFile returns the log path under the user cache directory,
// falling back to the temp dir when no cache dir is known.
func DefaultFile() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir, logFileName)
}

// New opens the log file and builds a logger writing to it.
// On error the returned Result holds a disabled logger and the error
// describes why; callers may continue with it.
func New(cfg Config) (Result, error) {
	path := cfg.File
	if path == "" {
		path = DefaultFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Result{Logger: zerolog.Nop()}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Result{Logger: zerolog.Nop()}, fmt.Errorf("open log file: %w", err)
	}

	return Result{
		Logger:   build(f, cfg),
		FilePath: path,
		file:     f,
	}, nil
}

// NewWriter builds a logger over an arbitrary writer. Used by tests and by
// the non-interactive fetch command, which logs to stderr.
func NewWriter(w io.Writer, cfg Config) zerolog.Logger {
	return build(w, cfg)
}

func build(w io.Writer, cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	if cfg.Debug {
		lvl = zerolog.DebugLevel
	}

	out := w
	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Debug {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
