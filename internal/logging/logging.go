// Package logging sets up the structured logger. The TUI owns the terminal,
// so log lines go to a file in the data directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// FileName is the log file created in the data directory.
const FileName = "vibe-os.log"

// Options controls where and how much is logged.
type Options struct {
	Level string // trace..panic; VIBE_LOG_LEVEL overrides when set
	File  string // absolute path; empty means <dir>/vibe-os.log
	Dir   string
}

// New returns a JSON logger and the file it writes to. Close the returned
// closer on shutdown.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	path := opts.File
	if path == "" {
		path = filepath.Join(opts.Dir, FileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := newLogger(f, opts.Level)
	return l, f, nil
}

// NewWriter returns a JSON logger writing to w.
func NewWriter(w io.Writer, level string) *logrus.Logger {
	return newLogger(w, level)
}

func newLogger(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	l.SetLevel(ParseLevel(level))
	return l
}

// ParseLevel resolves the effective level. VIBE_LOG_LEVEL wins over the
// configured value; anything unparsable means info.
func ParseLevel(configured string) logrus.Level {
	for _, s := range []string{os.Getenv("VIBE_LOG_LEVEL"), configured} {
		if s == "" {
			continue
		}
		if lvl, err := logrus.ParseLevel(strings.TrimSpace(s)); err == nil {
			return lvl
		}
	}
	return logrus.InfoLevel
}

// Component returns an entry tagged with the component name.
func Component(l *logrus.Logger, name string) *logrus.Entry {
	if l == nil {
		return Discard()
	}
	return l.WithField("component", name)
}

// Discard returns an entry that drops everything.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
