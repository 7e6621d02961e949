// Package logger builds the zerolog loggers used across netquiz.
//
// Libraries never log through a global: they take a zerolog.Logger option and
// default to zerolog.Nop(). The CLI calls InitLogger once and passes Logger down.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects level, format and destination of the process logger.
type Config struct {
	Level      string `yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format     string `yaml:"format" envconfig:"FORMAT" validate:"oneof=console json"`
	Output     string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file"`
	FilePath   string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file"`
	TimeFormat string `yaml:"time_format" envconfig:"TIME_FORMAT" validate:"omitempty,oneof=rfc3339 unix iso8601"`
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console", Output: "stderr", TimeFormat: "rfc3339"}
}

// Logger is the process logger configured by InitLogger.
var Logger = zerolog.Nop()

var logFile *os.File

// InitLogger configures Logger (and the zerolog global) from c.
func InitLogger(c Config) error {
	out, err := openOutput(c)
	if err != nil {
		return err
	}
	l, err := New(out, c)
	if err != nil {
		return err
	}
	Logger = l
	log.Logger = l

	Logger.Debug().
		Str("level", c.Level).
		Str("format", c.Format).
		Str("output", c.Output).
		Msg("logger initialized")
	return nil
}

// New returns a logger writing to w with c's level, format and time format.
// Output and FilePath are ignored.
func New(w io.Writer, c Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	switch strings.ToLower(c.TimeFormat) {
	case "unix":
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	case "iso8601":
		zerolog.TimeFieldFormat = "2006-01-02T15:04:05.000Z07:00"
	default:
		zerolog.TimeFieldFormat = time.RFC3339
	}

	switch strings.ToLower(c.Format) {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	case "json", "":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", c.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Close releases the log file opened by InitLogger, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func openOutput(c Config) (io.Writer, error) {
	switch strings.ToLower(c.Output) {
	case "stdout":
		return os.Stdout, nil
	case "file":
		if c.FilePath == "" {
			return nil, fmt.Errorf("log output %q needs a file path", c.Output)
		}
		if err := os.MkdirAll(filepath.Dir(c.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(c.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", c.FilePath, err)
		}
		logFile = f
		return f, nil
	default:
		return os.Stderr, nil
	}
}
