package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds logger settings.
type Config struct {
	Level string `toml:"log-level"`
}

var DefaultConfig = Config{Level: "info"}

type Log struct {
	*logrus.Entry
}

// NewLogger builds a logrus logger writing to stderr. Stdout is left to
// the status line the CLI contract requires.
func NewLogger(cfg Config) (*Log, error) {
	log := logrus.New()

	log.SetOutput(os.Stderr)

	log.Formatter = &logrus.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05.0000",
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logger: bad level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	// single writer, no need for the entry mutex
	log.SetNoLock()

	return &Log{Entry: logrus.NewEntry(log)}, nil
}

// Discard returns a logger that drops everything. Used in tests and as
// a fallback when no logger is supplied.
func Discard() *Log {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Log{Entry: logrus.NewEntry(log)}
}

// With adds fields to the formatted log entry.
func (l *Log) With(fields Fields) *Log {
	return &Log{Entry: l.WithFields(logrus.Fields(fields))}
}

// Fields are a representation of formatted log fields.
type Fields map[string]interface{}
